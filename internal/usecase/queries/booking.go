package queries

import (
	"context"
	"strings"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidDate     = booking.ErrInvalidDate
)

type BookingReadStore interface {
	ListFrom(ctx context.Context, date string) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByDate(ctx context.Context, date string) ([]*BookingView, error)
	ListByRoomDate(ctx context.Context, room, date string) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	// ListUpcoming returns bookings on date, or from today onward when date is empty.
	ListUpcoming(ctx context.Context, date string) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, date string) ([]*BookingView, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return q.readStore.ListFrom(ctx, q.clock.Now().Format(booking.DateLayout))
	}
	if !booking.ValidDate(date) {
		return nil, ErrInvalidDate
	}
	return q.readStore.ListByDate(ctx, date)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func toDomain(views []*BookingView) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(views))
	for _, v := range views {
		b, err := booking.Reconstruct(v.ID, v.UserName, v.Room, v.Date, v.StartTime, v.EndTime, v.People, v.Remark, v.CreatedAt)
		if err != nil {
			return nil, errs.Wrapf(err, "stored booking %s", v.ID)
		}
		out = append(out, b)
	}
	return out, nil
}
