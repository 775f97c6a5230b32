package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-booking/internal/pkg/config"
	"meeting-room-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const sweepTimeout = 30 * time.Second

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*cron.Cron) {}),
)

// NewScheduler runs the archival sweep on cfg.Archive.Schedule. The returned
// scheduler is started and stopped with the application.
func NewScheduler(lc fx.Lifecycle, cfg config.Config, archive commands.ArchiveCommands, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(cfg.Server.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	if !cfg.Archive.Enabled {
		logger.Info("archive scheduler disabled")
		return c, nil
	}

	_, err := c.AddFunc(cfg.Archive.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if _, err := archive.Sweep(ctx); err != nil {
			logger.Error("scheduled sweep failed", "error", err.Error())
		}
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("archive scheduler started", "schedule", cfg.Archive.Schedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return c, nil
}
