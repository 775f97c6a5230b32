package commands

import (
	"context"
	"log/slog"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/shared"
)

type ArchiveCommands interface {
	// Sweep moves every booking that ended before now into history and
	// returns how many left the active set. Running it twice changes nothing.
	Sweep(ctx context.Context) (int, error)
}

type archiveCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewArchiveCommands(uow shared.UnitOfWork, clk clock.Clock) ArchiveCommands {
	return &archiveCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *archiveCommandsImpl) Sweep(ctx context.Context) (int, error) {
	now := c.clock.Now()
	today := now.Format(booking.DateLayout)

	var moved int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		moved = 0

		candidates, err := tx.Bookings().ListEndingByDate(ctx, today)
		if err != nil {
			return err
		}

		for _, b := range booking.SelectExpired(now, candidates) {
			if _, err := tx.History().Archive(ctx, b, now); err != nil {
				return err
			}
			if err := tx.Bookings().Delete(ctx, b.ID()); err != nil {
				// Already removed by a concurrent sweep
				if infra.IsKind(err, infra.KindNotFound) {
					continue
				}
				return err
			}
			moved++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if moved > 0 {
		slog.Info("archived expired bookings", "count", moved, "now", now.Format("2006-01-02 15:04"))
	}
	return moved, nil
}
