package readstore

import (
	"context"

	"meeting-room-booking/internal/infra"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/pgconv"
	"meeting-room-booking/internal/usecase/queries"
)

type HistoryReadQueries interface {
	ListHistory(ctx context.Context, db sqlc.DBTX) ([]sqlc.BookingsHistory, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) List(ctx context.Context) ([]*queries.HistoryView, error) {
	rows, err := r.queries.ListHistory(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history", err)
	}

	result := make([]*queries.HistoryView, len(rows))
	for i, row := range rows {
		date, err := pgconv.DateFromPgtype(row.BookingDate)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking date in history row", err)
		}
		result[i] = &queries.HistoryView{
			ID:         row.ID,
			UserName:   row.UserName,
			Room:       row.Room,
			Date:       date,
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
			People:     pgconv.IntPtrFromPgtype(row.People),
			Remark:     row.Remark,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			ArchivedAt: pgconv.TimeFromPgtype(row.ArchivedAt),
		}
	}
	return result, nil
}
