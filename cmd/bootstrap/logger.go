package bootstrap

import (
	"log/slog"

	"meeting-room-booking/internal/handler/middleware"
	"meeting-room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewSlogLogger(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
