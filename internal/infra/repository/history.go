package repository

import (
	"context"
	"time"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/infra/repository/converter"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HistoryWriteQueries interface {
	ArchiveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveBookingParams) (int64, error)
	DeleteHistory(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type HistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *HistoryRepository {
	return &HistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryRepository) Archive(ctx context.Context, b *booking.Booking, archivedAt time.Time) (bool, error) {
	params, err := converter.BookingToArchiveParams(b, archivedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to convert booking for archive", err, infra.KindCheckViolated)
	}
	n, err := r.queries.ArchiveBooking(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to archive booking", err)
	}
	return n > 0, nil
}

func (r *HistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteHistory(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete history record", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("history record not found", nil, infra.KindNotFound)
	}
	return nil
}
