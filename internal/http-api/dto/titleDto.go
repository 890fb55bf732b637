package dto

import (
	"reviewhub/internal/http-api/models"
)

// TitleWriteDTO is the write-side representation: category and genres are
// referenced by slug. Used for POST /api/v1/titles.
type TitleWriteDTO struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        int      `json:"year" binding:"required"`
	Description string   `json:"description,omitempty" binding:"max=2000"`
	Category    string   `json:"category" binding:"required"`
	Genre       []string `json:"genre" binding:"required,min=1"`
}

// TitleUpdateDTO allows partial updates (PATCH semantics).
type TitleUpdateDTO struct {
	Name        *string   `json:"name,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Genre       *[]string `json:"genre,omitempty"`
}

// TitleResponse is the read-side representation: nested category/genres
// plus the computed rating. Rating is null when the title has no reviews.
type TitleResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *float64         `json:"rating"`
	Description string           `json:"description,omitempty"`
	Genre       []GenreResponse  `json:"genre"`
	Category    CategoryResponse `json:"category"`
}

func TitleFromModel(t models.Title, rating *float64) TitleResponse {
	genres := make([]GenreResponse, 0, len(t.Genres))
	for _, g := range t.Genres {
		genres = append(genres, GenreFromModel(g))
	}
	return TitleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      rating,
		Description: t.Description,
		Genre:       genres,
		Category:    CategoryFromModel(t.Category),
	}
}

// PaginatedTitleResponse for returning paginated titles
type PaginatedTitleResponse struct {
	Data       []TitleResponse `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"total_pages"`
}

func NewPaginatedTitleResponse(data []TitleResponse, total int64, page, pageSize int) *PaginatedTitleResponse {
	return &PaginatedTitleResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}
}
