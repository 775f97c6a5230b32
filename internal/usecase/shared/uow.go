package shared

import (
	"context"
	"time"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/domain/room"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	History() HistoryRepository
	DB() sqlc.DBTX
}

// BookingRepository is the write-side store of active bookings.
// Dates are YYYY-MM-DD strings throughout.
type BookingRepository interface {
	// LockRoomDay serializes writers of one (room, date) until the transaction ends.
	LockRoomDay(ctx context.Context, roomName, date string) error
	ListByRoomDate(ctx context.Context, roomName, date string) ([]*booking.Booking, error)
	// ListEndingByDate returns bookings dated on or before date, skipping rows
	// another sweep already holds.
	ListEndingByDate(ctx context.Context, date string) ([]*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Create(ctx context.Context, r *room.Room) error
	Rename(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HistoryRepository interface {
	// Archive copies b into history unless a record with its id exists.
	// It reports whether a record was written.
	Archive(ctx context.Context, b *booking.Booking, archivedAt time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
