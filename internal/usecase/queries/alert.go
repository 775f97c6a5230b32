package queries

import (
	"context"
	"time"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/pkg/clock"
)

type AlertQueries interface {
	Upcoming(ctx context.Context) ([]*AlertView, error)
}

type alertQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
	window    time.Duration
}

func NewAlertQueries(readStore BookingReadStore, clk clock.Clock, window time.Duration) AlertQueries {
	return &alertQueriesImpl{
		readStore: readStore,
		clock:     clk,
		window:    window,
	}
}

func (q *alertQueriesImpl) Upcoming(ctx context.Context) ([]*AlertView, error) {
	now := q.clock.Now()
	views, err := q.readStore.ListByDate(ctx, now.Format(booking.DateLayout))
	if err != nil {
		return nil, err
	}
	bookings, err := toDomain(views)
	if err != nil {
		return nil, err
	}

	alerts := booking.UpcomingAlerts(now, q.window, bookings)
	out := make([]*AlertView, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, &AlertView{
			ID:       a.ID,
			Type:     string(a.Type),
			Time:     a.When,
			Room:     a.Room,
			UserName: a.UserName,
			Message:  a.Message,
		})
	}
	return out, nil
}
