package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"reviewhub/internal/config"
	"reviewhub/internal/http-api/models"
	"reviewhub/internal/http-api/repository"
	"reviewhub/internal/mailer"
	"reviewhub/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the JWT payload for access tokens. Role and staff flag travel
// in the token so middleware can gate admin routes without a DB hit.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// reservedUsernames collide with API routes and are rejected at signup.
var reservedUsernames = []string{"me"}

type AuthService interface {
	Signup(ctx context.Context, username, email string) (*models.User, error)
	IssueTokens(ctx context.Context, username, confirmationCode string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken, newRefreshToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	codeRepo         repository.ConfirmationCodeRepository
	mail             mailer.Mailer
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
	codeTTL          time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	codeRepo repository.ConfirmationCodeRepository,
	mail mailer.Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		codeRepo:         codeRepo,
		mail:             mail,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
		codeTTL:          cfg.ConfirmationCodeTTL,
	}
}

// Signup creates a pending user and mails them a single-use confirmation
// code. If the mail cannot be delivered the user record is removed again,
// so a failed signup leaves nothing behind.
func (s *authService) Signup(ctx context.Context, username, email string) (*models.User, error) {
	for _, reserved := range reservedUsernames {
		if strings.EqualFold(username, reserved) {
			return nil, ErrReservedUsername
		}
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrNameInUse
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailInUse
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	code := auth.GenerateCode()
	hash, err := auth.HashCode(code)
	if err != nil {
		s.userRepo.Delete(user.ID)
		return nil, err
	}
	if err := s.codeRepo.Set(ctx, user.ID, hash, s.codeTTL); err != nil {
		s.userRepo.Delete(user.ID)
		return nil, err
	}

	subject := "Confirmation code for ReviewHub"
	body := "Here is your code: " + code
	if err := s.mail.Send(ctx, email, subject, body); err != nil {
		// no orphaned pending users
		s.codeRepo.Delete(ctx, user.ID)
		s.userRepo.Delete(user.ID)
		return nil, ErrCodeDelivery
	}

	return user, nil
}

// IssueTokens exchanges a valid (username, code) pair for an access/refresh
// token pair. The code is consumed on success.
func (s *authService) IssueTokens(ctx context.Context, username, confirmationCode string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, ErrUserNotFound
		}
		return "", "", nil, err
	}

	hash, err := s.codeRepo.Get(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return "", "", nil, ErrInvalidConfirmationCode
		}
		return "", "", nil, err
	}
	if err := auth.VerifyCode(hash, confirmationCode); err != nil {
		return "", "", nil, ErrInvalidConfirmationCode
	}

	// single use
	if err := s.codeRepo.Delete(ctx, user.ID); err != nil {
		return "", "", nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return "", "", nil, err
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}
	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", nil, err
	}

	return accessToken, refreshToken, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		IsStaff:  user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(user *models.User) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

// RefreshAccessToken rotates the refresh token and issues a new access
// token for its owner.
func (s *authService) RefreshAccessToken(refreshTokenString string) (string, string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", "", ErrExpiredToken
	}

	user, err := s.userRepo.FindByID(refreshToken.UserID)
	if err != nil {
		return "", "", err
	}

	if err := s.refreshTokenRepo.Revoke(refreshToken.ID); err != nil {
		return "", "", err
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	newRefreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", err
	}

	return accessToken, newRefreshToken, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
