//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/pkg/config"
	"meeting-room-booking/internal/pkg/cookie"
	"meeting-room-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// LoginTestAdmin logs in with the credential config.NewTestConfig provisions.
func LoginTestAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginAdmin(t, router, "admin", config.TestAdminPassword)
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
