package readstore

import (
	"context"

	"meeting-room-booking/internal/infra"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/pgconv"
	"meeting-room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	ListBookingsFromDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.Bookings, error)
	ListBookingsForAdmin(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error)
	ListBookingsByDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.Bookings, error)
	ListBookingsByRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRoomDateParams) ([]sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListFrom(ctx context.Context, date string) ([]*queries.BookingView, error) {
	day, err := pgconv.DateToPgtype(date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid date", err, infra.KindCheckViolated)
	}
	rows, err := r.queries.ListBookingsFromDate(ctx, r.db, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsForAdmin(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListByDate(ctx context.Context, date string) ([]*queries.BookingView, error) {
	day, err := pgconv.DateToPgtype(date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid date", err, infra.KindCheckViolated)
	}
	rows, err := r.queries.ListBookingsByDate(ctx, r.db, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by date", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListByRoomDate(ctx context.Context, room, date string) ([]*queries.BookingView, error) {
	day, err := pgconv.DateToPgtype(date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid date", err, infra.KindCheckViolated)
	}
	rows, err := r.queries.ListBookingsByRoomDate(ctx, r.db, sqlc.ListBookingsByRoomDateParams{
		Room:        room,
		BookingDate: day,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by room and date", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row)
}

func toBookingViews(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func toBookingView(row sqlc.Bookings) (*queries.BookingView, error) {
	date, err := pgconv.DateFromPgtype(row.BookingDate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking date in row", err)
	}
	return &queries.BookingView{
		ID:        row.ID,
		UserName:  row.UserName,
		Room:      row.Room,
		Date:      date,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		People:    pgconv.IntPtrFromPgtype(row.People),
		Remark:    row.Remark,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
