//go:build unit

package booking_test

import (
	"testing"
	"time"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectExpired(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, 1, 10, 11, 0, 0, 0, loc)

	endedYesterday := builder.NewBookingBuilder().WithDate("2025-01-09").WithSlot("15:00", "16:00").MustBuildDomain()
	endedEarlier := builder.NewBookingBuilder().WithSlot("09:00", "10:30").MustBuildDomain()
	endsNow := builder.NewBookingBuilder().WithSlot("10:00", "11:00").MustBuildDomain()
	running := builder.NewBookingBuilder().WithSlot("10:30", "12:00").MustBuildDomain()
	tomorrow := builder.NewBookingBuilder().WithDate("2025-01-11").WithSlot("09:00", "09:30").MustBuildDomain()

	all := []*booking.Booking{endedYesterday, endedEarlier, endsNow, running, tomorrow}
	got := booking.SelectExpired(now, all)

	require.Len(t, got, 2)
	assert.Equal(t, endedYesterday.ID(), got[0].ID())
	assert.Equal(t, endedEarlier.ID(), got[1].ID())

	// One minute later the booking ending at 11:00 is strictly in the past.
	got = booking.SelectExpired(now.Add(time.Minute), all)
	assert.Len(t, got, 3)
}

func TestUpcomingAlerts(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, 1, 10, 9, 50, 0, 0, loc)

	startsSoon := builder.NewBookingBuilder().WithSlot("10:00", "12:00").MustBuildDomain()
	endsSoon := builder.NewBookingBuilder().WithRoom("Room B").WithSlot("09:00", "10:00").MustBuildDomain()
	later := builder.NewBookingBuilder().WithSlot("13:00", "14:00").MustBuildDomain()
	startedAlready := builder.NewBookingBuilder().WithRoom("Room C").WithSlot("09:30", "11:00").MustBuildDomain()
	otherDay := builder.NewBookingBuilder().WithDate("2025-01-11").WithSlot("10:00", "10:30").MustBuildDomain()

	alerts := booking.UpcomingAlerts(now, 15*time.Minute, []*booking.Booking{startsSoon, endsSoon, later, startedAlready, otherDay})

	require.Len(t, alerts, 2)
	assert.Equal(t, "start-"+startsSoon.ID().String(), alerts[0].ID)
	assert.Equal(t, booking.AlertStart, alerts[0].Type)
	assert.Equal(t, "10:00", alerts[0].When)
	assert.Equal(t, "Meeting in Room A starts at 10:00 (Booked by Alice).", alerts[0].Message)

	assert.Equal(t, "end-"+endsSoon.ID().String(), alerts[1].ID)
	assert.Equal(t, booking.AlertEnd, alerts[1].Type)
	assert.Equal(t, "Meeting in Room B ends at 10:00 (Booked by Alice).", alerts[1].Message)
}

func TestUpcomingAlertsIncludesHorizonBoundary(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, 1, 10, 9, 45, 0, 0, loc)
	b := builder.NewBookingBuilder().WithSlot("10:00", "10:30").MustBuildDomain()

	alerts := booking.UpcomingAlerts(now, 15*time.Minute, []*booking.Booking{b})
	require.Len(t, alerts, 1)
	assert.Equal(t, booking.AlertStart, alerts[0].Type)
}
