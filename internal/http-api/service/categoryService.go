package service

import (
	"context"
	"errors"
	"strings"

	"reviewhub/internal/http-api/models"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(ctx context.Context, page, pageSize int, search string) ([]models.Category, int64, error)
	Create(ctx context.Context, name, slug string) (*models.Category, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryService struct {
	repo CategoryStore
}

func NewCategoryService(r CategoryStore) CategoryService {
	return &categoryService{repo: r}
}

func (s *categoryService) List(ctx context.Context, page, pageSize int, search string) ([]models.Category, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize, search)
}

func (s *categoryService) Create(ctx context.Context, name, slug string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name required")
	}
	if !validSlug(slug) {
		return nil, ErrInvalidSlug
	}

	// slug lookup first for the domain message; the unique index is the
	// backstop for concurrent writers
	if _, err := s.repo.GetBySlug(ctx, slug); err == nil {
		return nil, ErrSlugInUse
	}

	c := &models.Category{Name: name, Slug: slug}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
