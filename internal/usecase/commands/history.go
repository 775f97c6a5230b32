package commands

import (
	"context"
	"log/slog"

	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHistoryNotFound = errs.New("history record not found")

type HistoryCommands interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type historyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHistoryCommands(uow shared.UnitOfWork) HistoryCommands {
	return &historyCommandsImpl{uow: uow}
}

func (c *historyCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.History().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHistoryNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("history record deleted", "history_id", id)
	return nil
}
