// Package cookie manages the admin session cookie. Only /api/admin routes
// read it, so it is scoped to that path.
package cookie

import (
	"net/http"
	"time"

	"meeting-room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "admin_token"
	AdminPath             = "/api/admin"
)

var sameSiteModes = map[string]http.SameSite{
	"Strict": http.SameSiteStrictMode,
	"Lax":    http.SameSiteLaxMode,
	"None":   http.SameSiteNoneMode,
}

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	write(c, cfg, accessToken, int(expiry.Seconds()))
}

// ClearAccessToken expires the cookie immediately.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	mode, ok := sameSiteModes[cfg.SameSite]
	if !ok {
		mode = http.SameSiteLaxMode
	}
	c.SetSameSite(mode)
	c.SetCookie(AccessTokenCookieName, value, maxAge, AdminPath, cfg.Domain, cfg.Secure, true)
}
