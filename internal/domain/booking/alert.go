package booking

import (
	"fmt"
	"time"
)

type AlertType string

const (
	AlertStart AlertType = "start"
	AlertEnd   AlertType = "end"
)

type Alert struct {
	ID       string
	Type     AlertType
	When     string
	Room     string
	UserName string
	Message  string
}

// UpcomingAlerts reports meetings on now's date whose start or end falls in
// [now, now+window]. A booking can produce both alerts.
func UpcomingAlerts(now time.Time, window time.Duration, bookings []*Booking) []Alert {
	today := now.Format(DateLayout)
	horizon := now.Add(window)
	alerts := []Alert{}

	within := func(t time.Time) bool { return !t.Before(now) && !t.After(horizon) }

	for _, b := range bookings {
		if b.date != today {
			continue
		}
		if startAt, err := b.StartsAt(now.Location()); err == nil && within(startAt) {
			alerts = append(alerts, newAlert(b, AlertStart, b.Start(), "starts"))
		}
		if endAt, err := b.EndsAt(now.Location()); err == nil && within(endAt) {
			alerts = append(alerts, newAlert(b, AlertEnd, b.End(), "ends"))
		}
	}
	return alerts
}

func newAlert(b *Booking, typ AlertType, when, verb string) Alert {
	return Alert{
		ID:       fmt.Sprintf("%s-%s", typ, b.id),
		Type:     typ,
		When:     when,
		Room:     b.room,
		UserName: b.userName,
		Message:  fmt.Sprintf("Meeting in %s %s at %s (Booked by %s).", b.room, verb, when, b.userName),
	}
}
