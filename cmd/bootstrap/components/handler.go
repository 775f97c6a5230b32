package components

import (
	"meeting-room-booking/internal/handler"
	"meeting-room-booking/internal/handler/api"
	"meeting-room-booking/internal/handler/middleware"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewHistoryHandler,
		api.NewAlertHandler,
		api.NewArchiveHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)
