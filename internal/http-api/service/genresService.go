package service

import (
	"context"
	"errors"
	"strings"

	"reviewhub/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreService interface {
	List(ctx context.Context, page, pageSize int, search string) ([]models.Genre, int64, error)
	Create(ctx context.Context, name, slug string) (*models.Genre, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreService struct {
	repo GenreStore
}

func NewGenreService(r GenreStore) GenreService {
	return &genreService{repo: r}
}

func (s *genreService) List(ctx context.Context, page, pageSize int, search string) ([]models.Genre, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize, search)
}

func (s *genreService) Create(ctx context.Context, name, slug string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("genre name required")
	}
	if !validSlug(slug) {
		return nil, ErrInvalidSlug
	}

	if _, err := s.repo.GetBySlug(ctx, slug); err == nil {
		return nil, ErrSlugInUse
	}

	g := &models.Genre{Name: name, Slug: slug}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGenreNotFound
		}
		return err
	}
	return nil
}
