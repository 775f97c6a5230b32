package middleware

import (
	"log/slog"

	"meeting-room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SweepBeforeRead archives expired bookings before an active-set listing is
// served. A failed sweep is logged and the request continues.
func SweepBeforeRead(archive commands.ArchiveCommands) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := archive.Sweep(c.Request.Context()); err != nil {
			slog.Warn("sweep before read failed", "path", c.Request.URL.Path, "error", err.Error())
		}
		c.Next()
	}
}
