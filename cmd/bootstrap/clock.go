package bootstrap

import (
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.Server.Location())
}
