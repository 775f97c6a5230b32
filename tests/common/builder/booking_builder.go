//go:build unit || e2e

package builder

import (
	"time"

	"meeting-room-booking/internal/domain/booking"
	reqdto "meeting-room-booking/internal/handler/dto/request"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/pgconv"
	"meeting-room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID        uuid.UUID
	UserName  string
	Room      string
	Date      string
	Start     string
	End       string
	People    *int
	Remark    string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	people := 4
	return &BookingBuilder{
		ID:        uuid.New(),
		UserName:  "Alice",
		Room:      "Room A",
		Date:      "2025-01-10",
		Start:     "10:00",
		End:       "11:00",
		People:    &people,
		Remark:    "weekly sync",
		CreatedAt: time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithRoom(room string) *BookingBuilder {
	b.Room = room
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithUserName(name string) *BookingBuilder {
	b.UserName = name
	return b
}

func (b *BookingBuilder) WithoutPeople() *BookingBuilder {
	b.People = nil
	return b
}

// Build methods
func (b *BookingBuilder) BuildCandidate() booking.Candidate {
	return booking.Candidate{
		Room:     b.Room,
		Date:     b.Date,
		Start:    b.Start,
		End:      b.End,
		UserName: b.UserName,
		People:   b.People,
		Remark:   b.Remark,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.Reconstruct(b.ID, b.UserName, b.Room, b.Date, b.Start, b.End, b.People, b.Remark, b.CreatedAt)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		Room:      b.Room,
		Date:      b.Date,
		StartTime: b.Start,
		EndTime:   b.End,
		UserName:  b.UserName,
		People:    b.People,
		Remark:    b.Remark,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		UserName:  b.UserName,
		Room:      b.Room,
		Date:      b.Date,
		StartTime: b.Start,
		EndTime:   b.End,
		People:    b.People,
		Remark:    b.Remark,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	date, _ := pgconv.DateToPgtype(b.Date)
	return sqlc.Bookings{
		ID:          b.ID,
		UserName:    b.UserName,
		Room:        b.Room,
		BookingDate: date,
		StartTime:   b.Start,
		EndTime:     b.End,
		People:      pgconv.Int4PtrToPgtype(b.People),
		Remark:      b.Remark,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}
