package service

import (
	"errors"
	"strings"

	"reviewhub/internal/http-api/dto"
	"reviewhub/internal/http-api/models"
	"reviewhub/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	List(page, pageSize int, search string) (*dto.PaginatedUserResponse, error)
	Create(in dto.CreateUserDTO) (*dto.UserResponse, error)
	GetByUsername(username string) (*dto.UserResponse, error)
	UpdateByUsername(username string, in dto.UpdateUserDTO) (*dto.UserResponse, error)
	DeleteByUsername(username string) error
	GetMe(userID string) (*dto.UserResponse, error)
	UpdateMe(userID string, in dto.UpdateUserDTO) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(page, pageSize int, search string) (*dto.PaginatedUserResponse, error) {
	users, total, err := s.userRepo.List(page, pageSize, search)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.UserFromModel(&users[i]))
	}

	return dto.NewPaginatedUserResponse(responses, total, page, pageSize), nil
}

func (s *userService) Create(in dto.CreateUserDTO) (*dto.UserResponse, error) {
	for _, reserved := range reservedUsernames {
		if strings.EqualFold(in.Username, reserved) {
			return nil, ErrReservedUsername
		}
	}
	if _, err := s.userRepo.FindByUsername(in.Username); err == nil {
		return nil, ErrNameInUse
	}
	if _, err := s.userRepo.FindByEmail(in.Email); err == nil {
		return nil, ErrEmailInUse
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		Role:      role,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return dto.UserFromModel(user), nil
}

func (s *userService) GetByUsername(username string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.UserFromModel(user), nil
}

func (s *userService) UpdateByUsername(username string, in dto.UpdateUserDTO) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *in.Role
	}
	applyProfilePatch(user, in)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return dto.UserFromModel(user), nil
}

func (s *userService) DeleteByUsername(username string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(user.ID)
}

func (s *userService) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.UserFromModel(user), nil
}

// UpdateMe applies a partial self-service update. Any role in the payload
// is discarded: self-service role escalation is blocked regardless of
// payload content.
func (s *userService) UpdateMe(userID string, in dto.UpdateUserDTO) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	in.Role = nil
	applyProfilePatch(user, in)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return dto.UserFromModel(user), nil
}

func applyProfilePatch(user *models.User, in dto.UpdateUserDTO) {
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
}
