package repository

import (
	"context"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/infra/repository/converter"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	LockRoomDay(ctx context.Context, db sqlc.DBTX, lockKey string) error
	ListBookingsByRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRoomDateParams) ([]sqlc.Bookings, error)
	ListBookingsUntilDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// RoomDayLockKey is the advisory lock key shared by every writer of one room-day.
func RoomDayLockKey(roomName, date string) string {
	return "booking:" + roomName + "|" + date
}

func (r *BookingRepository) LockRoomDay(ctx context.Context, roomName, date string) error {
	if err := r.queries.LockRoomDay(ctx, r.db, RoomDayLockKey(roomName, date)); err != nil {
		return infra.WrapRepoErr("failed to lock room day", err)
	}
	return nil
}

func (r *BookingRepository) ListByRoomDate(ctx context.Context, roomName, date string) ([]*booking.Booking, error) {
	day, err := pgconv.DateToPgtype(date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking date", err, infra.KindCheckViolated)
	}
	rows, err := r.queries.ListBookingsByRoomDate(ctx, r.db, sqlc.ListBookingsByRoomDateParams{
		Room:        roomName,
		BookingDate: day,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by room and date", err)
	}
	return toDomain(rows)
}

func (r *BookingRepository) ListEndingByDate(ctx context.Context, date string) ([]*booking.Booking, error) {
	day, err := pgconv.DateToPgtype(date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid sweep date", err, infra.KindCheckViolated)
	}
	rows, err := r.queries.ListBookingsUntilDate(ctx, r.db, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings until date", err)
	}
	return toDomain(rows)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindCheckViolated)
	}
	row, err := r.queries.CreateBooking(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	params, err := converter.BookingToUpdateParams(b)
	if err != nil {
		return infra.WrapRepoErr("failed to convert booking", err, infra.KindCheckViolated)
	}
	n, err := r.queries.UpdateBooking(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func toDomain(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking rows", err)
	}
	return out, nil
}
