package service

import (
	"context"
	"testing"

	"reviewhub/internal/http-api/dto"
	"reviewhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCommentCreate_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCommentService(commentRepo, reviewRepo)

	reviewRepo.On("GetByID", int64(7), int64(42)).Return(&models.Review{ID: 42, TitleID: 7}, nil)
	commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Comment).ID = 3
	})
	saved := &models.Comment{
		ID:       3,
		ReviewID: 42,
		AuthorID: "user-1",
		Text:     "agreed",
		Author:   models.User{ID: "user-1", Username: "reader"},
	}
	commentRepo.On("GetByID", int64(42), int64(3)).Return(saved, nil)

	resp, err := svc.Create(context.Background(), models.User{ID: "user-1"}, 7, 42, dto.CreateCommentDTO{Text: "agreed"})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "agreed", resp.Text)
	commentRepo.AssertExpectations(t)
}

func TestCommentCreate_ReviewMissing(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCommentService(commentRepo, reviewRepo)

	// review exists but not under this title
	reviewRepo.On("GetByID", int64(9), int64(42)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Create(context.Background(), models.User{ID: "user-1"}, 9, 42, dto.CreateCommentDTO{Text: "lost"})

	assert.ErrorIs(t, err, ErrReviewNotFound)
	assert.Nil(t, resp)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCommentUpdate_ModeratorAllowed(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCommentService(commentRepo, reviewRepo)

	reviewRepo.On("GetByID", int64(7), int64(42)).Return(&models.Review{ID: 42}, nil)
	commentRepo.On("GetByID", int64(42), int64(3)).Return(&models.Comment{ID: 3, ReviewID: 42, AuthorID: "someone-else"}, nil)
	commentRepo.On("Update", mock.AnythingOfType("*models.Comment")).Return(nil)

	moderator := models.User{ID: "mod-1", Role: models.RoleModerator}
	resp, err := svc.Update(context.Background(), moderator, 7, 42, 3, dto.UpdateCommentDTO{Text: "cleaned up"})

	assert.NoError(t, err)
	assert.Equal(t, "cleaned up", resp.Text)
}

func TestCommentDelete_StrangerForbidden(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCommentService(commentRepo, reviewRepo)

	reviewRepo.On("GetByID", int64(7), int64(42)).Return(&models.Review{ID: 42}, nil)
	commentRepo.On("GetByID", int64(42), int64(3)).Return(&models.Comment{ID: 3, AuthorID: "someone-else"}, nil)

	err := svc.Delete(context.Background(), models.User{ID: "other", Role: models.RoleUser}, 7, 42, 3)

	assert.ErrorIs(t, err, ErrPermissionDenied)
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCommentGet_NotFound(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCommentService(commentRepo, reviewRepo)

	reviewRepo.On("GetByID", int64(7), int64(42)).Return(&models.Review{ID: 42}, nil)
	commentRepo.On("GetByID", int64(42), int64(404)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Get(context.Background(), 7, 42, 404)

	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Nil(t, resp)
}
