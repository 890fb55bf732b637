package middleware

import (
	"net/http"
	"strings"

	"reviewhub/internal/http-api/models"
	"reviewhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the Authorization header.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("claims", claims)
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("isStaff", claims.IsStaff)

		c.Next()
	}
}

// RequireAdmin restricts a route to admin-capable users. Staff accounts
// pass regardless of role, mirroring models.User.IsAdminUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester, ok := RequesterFrom(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not found in token"})
			c.Abort()
			return
		}

		if !requester.IsAdminUser() {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequesterFrom rebuilds the requesting user from the values AuthMiddleware
// stored in the context. The result carries only identity and capability
// fields; profile data stays in the database.
func RequesterFrom(c *gin.Context) (models.User, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return models.User{}, false
	}
	id, ok := userID.(string)
	if !ok {
		return models.User{}, false
	}

	user := models.User{
		ID:       id,
		Username: c.GetString("username"),
		Role:     c.GetString("role"),
		IsStaff:  c.GetBool("isStaff"),
	}
	return user, true
}
