package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewhub/internal/http-api/dto"
	"reviewhub/internal/http-api/models"
	"reviewhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueTokens(ctx context.Context, username, confirmationCode string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, confirmationCode)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/signup", h.Signup)

	user := &models.User{ID: "user-123", Username: "reader", Email: "reader@example.com"}
	mockAuthService.On("Signup", mock.Anything, "reader", "reader@example.com").Return(user, nil)

	w := postJSON(router, "/signup", dto.SignupRequest{Username: "reader", Email: "reader@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SignupResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reader", resp.Username)
	assert.Equal(t, "reader@example.com", resp.Email)
	mockAuthService.AssertExpectations(t)
}

func TestSignupEndpoint_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService))
	router := setupRouter()
	router.POST("/signup", h.Signup)

	w := postJSON(router, "/signup", gin.H{"username": "reader", "email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupEndpoint_ReservedUsername(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/signup", h.Signup)

	mockAuthService.On("Signup", mock.Anything, "me", "me@example.com").Return(nil, service.ErrReservedUsername)

	w := postJSON(router, "/signup", dto.SignupRequest{Username: "me", Email: "me@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenEndpoint_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/token", h.Token)

	user := &models.User{ID: "user-123", Username: "reader"}
	mockAuthService.On("IssueTokens", mock.Anything, "reader", "code-abc").Return("access-jwt", "refresh-opaque", user, nil)

	w := postJSON(router, "/token", dto.TokenRequest{Username: "reader", ConfirmationCode: "code-abc"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access-jwt", resp.Access)
	assert.Equal(t, "refresh-opaque", resp.Refresh)
}

func TestTokenEndpoint_WrongCode(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/token", h.Token)

	mockAuthService.On("IssueTokens", mock.Anything, "reader", "bogus").Return("", "", nil, service.ErrInvalidConfirmationCode)

	w := postJSON(router, "/token", dto.TokenRequest{Username: "reader", ConfirmationCode: "bogus"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Not valid confirmation code")
}

func TestTokenEndpoint_UnknownUser(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/token", h.Token)

	mockAuthService.On("IssueTokens", mock.Anything, "ghost", "code").Return("", "", nil, service.ErrUserNotFound)

	w := postJSON(router, "/token", dto.TokenRequest{Username: "ghost", ConfirmationCode: "code"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshEndpoint_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/refresh", h.Refresh)

	mockAuthService.On("RefreshAccessToken", "stale").Return("", "", service.ErrInvalidToken)

	w := postJSON(router, "/refresh", dto.RefreshTokenRequest{RefreshToken: "stale"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
