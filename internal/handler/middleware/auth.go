package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"meeting-room-booking/internal/handler/httperr"
	"meeting-room-booking/internal/pkg/cookie"
	"meeting-room-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errTokenRequired = errors.New("access token required")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAdminUsernameKey = "admin_username"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin token from the cookie or an Authorization
// Bearer header, cookie first.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Admin login required", nil)
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminUsernameKey, username)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminUsernameKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}
