package queries

import (
	"context"
	"strings"

	"meeting-room-booking/internal/domain/booking"
)

type AvailabilityQueries interface {
	// AvailableTimes lists free start slots for room on date and, when start
	// is given, the end times reachable from it.
	AvailableTimes(ctx context.Context, room, date, start string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	readStore BookingReadStore
	engine    *booking.Engine
}

func NewAvailabilityQueries(readStore BookingReadStore, engine *booking.Engine) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore: readStore,
		engine:    engine,
	}
}

func (q *availabilityQueriesImpl) AvailableTimes(ctx context.Context, room, date, start string) (*AvailabilityView, error) {
	room = booking.CanonicalRoom(room)
	date = strings.TrimSpace(date)
	start = strings.TrimSpace(start)

	if room == "" || date == "" {
		return nil, &booking.ValidationError{Kind: booking.KindMissingQueryParam}
	}
	if !booking.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	views, err := q.readStore.ListByRoomDate(ctx, room, date)
	if err != nil {
		return nil, err
	}
	existing, err := toDomain(views)
	if err != nil {
		return nil, err
	}

	ends, err := q.engine.AvailableEnds(existing, start)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		Room:   room,
		Date:   date,
		Start:  start,
		Starts: q.engine.AvailableStarts(existing),
		Ends:   ends,
	}, nil
}
