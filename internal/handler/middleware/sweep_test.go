//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"meeting-room-booking/internal/handler/middleware"
	"meeting-room-booking/tests/common/httptest"
	commandsmock "meeting-room-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSweepBeforeRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		sweepErr error
	}{
		{name: "success: sweep then serve"},
		{name: "success: failed sweep still serves the read", sweepErr: errors.New("lock timeout")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			archive := commandsmock.NewMockArchiveCommands(ctrl)

			served := false
			router := gin.New()
			router.GET("/bookings", middleware.SweepBeforeRead(archive), func(c *gin.Context) {
				served = true
				c.Status(http.StatusOK)
			})

			archive.EXPECT().Sweep(gomock.Any()).Return(1, tc.sweepErr).Times(1)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/bookings", nil, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, served)
		})
	}
}
