package dto

import "reviewhub/internal/http-api/models"

// CreateUserDTO used by admins for POST /api/v1/users
type CreateUserDTO struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty" binding:"max=150"`
	LastName  string `json:"last_name,omitempty" binding:"max=150"`
	Bio       string `json:"bio,omitempty"`
}

// UpdateUserDTO allows partial updates. Role is honored only on the admin
// surface; the self-service endpoint discards it.
type UpdateUserDTO struct {
	Email     *string `json:"email,omitempty"`
	Role      *string `json:"role,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// UserResponse for returning user information
type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

func UserFromModel(u *models.User) *UserResponse {
	return &UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
	}
}

// PaginatedUserResponse for returning paginated users
type PaginatedUserResponse struct {
	Data       []UserResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

func NewPaginatedUserResponse(data []UserResponse, total int64, page, pageSize int) *PaginatedUserResponse {
	return &PaginatedUserResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}
}
