package auth

import (
	"errors"
	"net/http"
	"strings"

	"sales-crm-backend/internal/access"
	apperrors "sales-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const callerContextKey = "caller"

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the session token and sets the caller context.
// The token is read from the session cookie or an Authorization bearer
// header; either is accepted.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": apperrors.ErrMissingToken.Error()})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		// Reject tokens for users that no longer exist
		if _, err := m.service.userRepo.GetByID(claims.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": apperrors.ErrInvalidToken.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to verify caller"})
			}
			c.Abort()
			return
		}

		c.Set(callerContextKey, claims.Caller())
		c.Set("email", claims.Email)
		c.Next()
	}
}

// extractToken pulls the JWT from the cookie or the Authorization header
func (m *Middleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(m.service.CookieName()); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// GetCaller is a helper function to extract the caller identity from context
func GetCaller(c *gin.Context) (access.Caller, bool) {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return access.Caller{}, false
	}
	caller, ok := value.(access.Caller)
	return caller, ok
}
