package service

import (
	"context"
	"testing"
	"time"

	"reviewhub/internal/http-api/dto"
	"reviewhub/internal/http-api/models"
	"reviewhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestTitleCreate_Success(t *testing.T) {
	titleStore := new(MockTitleStore)
	categoryStore := new(MockCategoryStore)
	genreStore := new(MockGenreStore)
	svc := NewTitleService(titleStore, categoryStore, genreStore, new(MockReviewRepository))

	categoryStore.On("GetBySlug", mock.Anything, "movie").Return(&models.Category{ID: 1, Name: "Movie", Slug: "movie"}, nil)
	genreStore.On("GetBySlugs", mock.Anything, []string{"drama"}).Return([]models.Genre{{ID: 2, Name: "Drama", Slug: "drama"}}, nil)
	titleStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Title")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Title).ID = 7
	})

	resp, err := svc.Create(context.Background(), dto.TitleWriteDTO{
		Name:     "The Long Quiet",
		Year:     2020,
		Category: "movie",
		Genre:    []string{"drama"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "movie", resp.Category.Slug)
	assert.Nil(t, resp.Rating)
	titleStore.AssertExpectations(t)
}

func TestTitleCreate_FutureYearRejected(t *testing.T) {
	svc := NewTitleService(new(MockTitleStore), new(MockCategoryStore), new(MockGenreStore), new(MockReviewRepository))

	resp, err := svc.Create(context.Background(), dto.TitleWriteDTO{
		Name:     "From the Future",
		Year:     time.Now().Year() + 1,
		Category: "movie",
		Genre:    []string{"drama"},
	})

	assert.ErrorIs(t, err, ErrYearInFuture)
	assert.Nil(t, resp)
}

func TestTitleCreate_UnknownCategorySlug(t *testing.T) {
	categoryStore := new(MockCategoryStore)
	svc := NewTitleService(new(MockTitleStore), categoryStore, new(MockGenreStore), new(MockReviewRepository))

	categoryStore.On("GetBySlug", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Create(context.Background(), dto.TitleWriteDTO{
		Name:     "Orphan",
		Year:     2020,
		Category: "nope",
		Genre:    []string{"drama"},
	})

	assert.ErrorIs(t, err, ErrUnresolvedSlug)
	assert.Nil(t, resp)
}

func TestTitleCreate_UnknownGenreSlug(t *testing.T) {
	categoryStore := new(MockCategoryStore)
	genreStore := new(MockGenreStore)
	svc := NewTitleService(new(MockTitleStore), categoryStore, genreStore, new(MockReviewRepository))

	categoryStore.On("GetBySlug", mock.Anything, "movie").Return(&models.Category{ID: 1, Slug: "movie"}, nil)
	// only one of two slugs resolves
	genreStore.On("GetBySlugs", mock.Anything, []string{"drama", "nope"}).Return([]models.Genre{{ID: 2, Slug: "drama"}}, nil)

	resp, err := svc.Create(context.Background(), dto.TitleWriteDTO{
		Name:     "Half Known",
		Year:     2020,
		Category: "movie",
		Genre:    []string{"drama", "nope"},
	})

	assert.ErrorIs(t, err, ErrUnresolvedSlug)
	assert.Nil(t, resp)
}

func TestTitleGet_RatingNullWithoutReviews(t *testing.T) {
	titleStore := new(MockTitleStore)
	reviewRepo := new(MockReviewRepository)
	svc := NewTitleService(titleStore, new(MockCategoryStore), new(MockGenreStore), reviewRepo)

	titleStore.On("GetByID", mock.Anything, int64(7)).Return(&models.Title{ID: 7, Name: "Quiet", Year: 2019}, nil)
	reviewRepo.On("AverageScoreByTitle", int64(7)).Return(nil, nil)

	resp, err := svc.Get(context.Background(), 7)

	assert.NoError(t, err)
	assert.Nil(t, resp.Rating)
}

func TestTitleGet_RatingAveraged(t *testing.T) {
	titleStore := new(MockTitleStore)
	reviewRepo := new(MockReviewRepository)
	svc := NewTitleService(titleStore, new(MockCategoryStore), new(MockGenreStore), reviewRepo)

	avg := 7.5
	titleStore.On("GetByID", mock.Anything, int64(7)).Return(&models.Title{ID: 7}, nil)
	reviewRepo.On("AverageScoreByTitle", int64(7)).Return(&avg, nil)

	resp, err := svc.Get(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotNil(t, resp.Rating)
	assert.InDelta(t, 7.5, *resp.Rating, 0.001)
}

func TestTitleList_StitchesRatings(t *testing.T) {
	titleStore := new(MockTitleStore)
	reviewRepo := new(MockReviewRepository)
	svc := NewTitleService(titleStore, new(MockCategoryStore), new(MockGenreStore), reviewRepo)

	titles := []models.Title{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	titleStore.On("GetAll", mock.Anything, repository.TitleFilter{}, 1, 20).Return(titles, int64(2), nil)
	reviewRepo.On("AverageScoresByTitleIDs", []int64{1, 2}).Return(map[int64]float64{1: 9.0}, nil)

	resp, err := svc.List(context.Background(), repository.TitleFilter{}, 1, 20)

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.NotNil(t, resp.Data[0].Rating)
	assert.InDelta(t, 9.0, *resp.Data[0].Rating, 0.001)
	assert.Nil(t, resp.Data[1].Rating)
}

func TestTitleUpdate_NotFound(t *testing.T) {
	titleStore := new(MockTitleStore)
	svc := NewTitleService(titleStore, new(MockCategoryStore), new(MockGenreStore), new(MockReviewRepository))

	titleStore.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	name := "New Name"
	resp, err := svc.Update(context.Background(), 404, dto.TitleUpdateDTO{Name: &name})

	assert.ErrorIs(t, err, ErrTitleNotFound)
	assert.Nil(t, resp)
}
