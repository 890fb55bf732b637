package service

import (
	"context"
	"errors"
	"time"

	"reviewhub/internal/http-api/dto"
	"reviewhub/internal/http-api/models"
	"reviewhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type TitleService interface {
	List(ctx context.Context, f repository.TitleFilter, page, pageSize int) (*dto.PaginatedTitleResponse, error)
	Get(ctx context.Context, id int64) (*dto.TitleResponse, error)
	Create(ctx context.Context, in dto.TitleWriteDTO) (*dto.TitleResponse, error)
	Update(ctx context.Context, id int64, in dto.TitleUpdateDTO) (*dto.TitleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type titleService struct {
	titleRepo    TitleStore
	categoryRepo CategoryStore
	genreRepo    GenreStore
	reviewRepo   repository.ReviewRepository
}

func NewTitleService(
	titleRepo TitleStore,
	categoryRepo CategoryStore,
	genreRepo GenreStore,
	reviewRepo repository.ReviewRepository,
) TitleService {
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		reviewRepo:   reviewRepo,
	}
}

// validateYear rejects release years in the future. Single implementation,
// applied on both create and update paths.
func validateYear(year int) error {
	if year > time.Now().Year() {
		return ErrYearInFuture
	}
	return nil
}

func (s *titleService) List(ctx context.Context, f repository.TitleFilter, page, pageSize int) (*dto.PaginatedTitleResponse, error) {
	titles, total, err := s.titleRepo.GetAll(ctx, f, page, pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(titles))
	for _, t := range titles {
		ids = append(ids, t.ID)
	}
	ratings, err := s.reviewRepo.AverageScoresByTitleIDs(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TitleResponse, 0, len(titles))
	for _, t := range titles {
		var rating *float64
		if avg, ok := ratings[t.ID]; ok {
			avg := avg
			rating = &avg
		}
		responses = append(responses, dto.TitleFromModel(t, rating))
	}

	return dto.NewPaginatedTitleResponse(responses, total, page, pageSize), nil
}

func (s *titleService) Get(ctx context.Context, id int64) (*dto.TitleResponse, error) {
	title, err := s.titleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}

	rating, err := s.reviewRepo.AverageScoreByTitle(id)
	if err != nil {
		return nil, err
	}

	resp := dto.TitleFromModel(*title, rating)
	return &resp, nil
}

func (s *titleService) Create(ctx context.Context, in dto.TitleWriteDTO) (*dto.TitleResponse, error) {
	if err := validateYear(in.Year); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	genres, err := s.resolveGenres(ctx, in.Genre)
	if err != nil {
		return nil, err
	}

	title := &models.Title{
		Name:        in.Name,
		Year:        in.Year,
		Description: in.Description,
		CategoryID:  category.ID,
		Category:    *category,
		Genres:      genres,
	}
	if err := s.titleRepo.Create(ctx, title); err != nil {
		return nil, err
	}

	resp := dto.TitleFromModel(*title, nil)
	return &resp, nil
}

func (s *titleService) Update(ctx context.Context, id int64, in dto.TitleUpdateDTO) (*dto.TitleResponse, error) {
	title, err := s.titleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}

	if in.Year != nil {
		if err := validateYear(*in.Year); err != nil {
			return nil, err
		}
		title.Year = *in.Year
	}
	if in.Name != nil {
		title.Name = *in.Name
	}
	if in.Description != nil {
		title.Description = *in.Description
	}
	if in.Category != nil {
		category, err := s.resolveCategory(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = category.ID
		title.Category = *category
	}
	if in.Genre != nil {
		genres, err := s.resolveGenres(ctx, *in.Genre)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
	}

	if err := s.titleRepo.Update(ctx, title); err != nil {
		return nil, err
	}

	rating, err := s.reviewRepo.AverageScoreByTitle(id)
	if err != nil {
		return nil, err
	}

	resp := dto.TitleFromModel(*title, rating)
	return &resp, nil
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	if err := s.titleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTitleNotFound
		}
		return err
	}
	return nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnresolvedSlug
		}
		return nil, err
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]models.Genre, error) {
	genres, err := s.genreRepo.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}
	// a missing slug resolves to a shorter result set
	if len(genres) != len(uniqueStrings(slugs)) {
		return nil, ErrUnresolvedSlug
	}
	return genres, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
