package booking

import (
	"time"

	"meeting-room-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// Engine decides availability for one room-day. It holds only the immutable
// day window and is safe for concurrent use.
type Engine struct {
	day slot.Day
}

func NewEngine(day slot.Day) *Engine {
	return &Engine{day: day}
}

func DefaultEngine() *Engine {
	return NewEngine(slot.DefaultDay)
}

func (e *Engine) Day() slot.Day { return e.day }

// Validate checks a candidate against the existing bookings of the same
// (room, date). Checks run in a fixed order and the first failure wins.
// exclude is the id of the booking being edited, or uuid.Nil.
func (e *Engine) Validate(c Candidate, existing []*Booking, exclude uuid.UUID) error {
	c = c.Normalize()

	for _, f := range []struct{ name, value string }{
		{"room", c.Room},
		{"date", c.Date},
		{"start_time", c.Start},
		{"end_time", c.End},
		{"user_name", c.UserName},
	} {
		if f.value == "" {
			return newValidationError(KindMissingField, f.name)
		}
	}

	if !ValidDate(c.Date) {
		return ErrInvalidDate
	}

	start, err := slot.ToMinutes(c.Start)
	if err != nil || !e.day.OnGrid(start) {
		return newValidationError(KindInvalidTimeGrid, "start_time")
	}
	end, err := slot.ToMinutes(c.End)
	if err != nil || !e.day.OnGrid(end) {
		return newValidationError(KindInvalidTimeGrid, "end_time")
	}

	if end <= start {
		return newValidationError(KindEndBeforeStart, "")
	}

	for _, b := range existing {
		if exclude != uuid.Nil && b.ID() == exclude {
			continue
		}
		if slot.Overlaps(start, end, b.interval.Start, b.interval.End) {
			return newValidationError(KindSlotConflict, "")
		}
	}

	return nil
}

// Accept validates the candidate and builds the booking to persist.
func (e *Engine) Accept(id uuid.UUID, c Candidate, existing []*Booking, exclude uuid.UUID, now time.Time) (*Booking, error) {
	if err := e.Validate(c, existing, exclude); err != nil {
		return nil, err
	}
	c = c.Normalize()
	interval, err := slot.ParseInterval(c.Start, c.End)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:        id,
		userName:  c.UserName,
		room:      c.Room,
		date:      c.Date,
		interval:  interval,
		people:    c.People,
		remark:    c.Remark,
		createdAt: now,
	}, nil
}

// AvailableStarts lists each start slot whose first half hour is free.
func (e *Engine) AvailableStarts(existing []*Booking) []string {
	out := []string{}
	for m := e.day.StartMinutes(); m < e.day.EndMinutes(); m += slot.Step {
		if !overlapsAny(m, m+slot.Step, existing) {
			out = append(out, format(m))
		}
	}
	return out
}

// AvailableEnds lists the legal end times for selectedStart: the maximal
// contiguous free run above it, bounded by the next booking that starts at or
// after selectedStart. An empty selectedStart yields no ends; one that is not
// a start slot of the day is an invalid-time-grid error.
func (e *Engine) AvailableEnds(existing []*Booking, selectedStart string) ([]string, error) {
	out := []string{}
	if selectedStart == "" {
		return out, nil
	}
	start, err := slot.ToMinutes(selectedStart)
	if err != nil {
		return nil, err
	}
	if !e.day.OnGrid(start) || start >= e.day.EndMinutes() {
		return nil, newValidationError(KindInvalidTimeGrid, "start")
	}

	blockAfter := e.day.EndMinutes()
	for _, b := range existing {
		if b.interval.Start >= start && b.interval.Start < blockAfter {
			blockAfter = b.interval.Start
		}
	}

	for end := start + slot.Step; end <= e.day.EndMinutes(); end += slot.Step {
		if end > blockAfter || overlapsAny(start, end, existing) {
			break
		}
		out = append(out, format(end))
	}
	return out, nil
}

func overlapsAny(start, end int, existing []*Booking) bool {
	for _, b := range existing {
		if slot.Overlaps(start, end, b.interval.Start, b.interval.End) {
			return true
		}
	}
	return false
}

func format(m int) string {
	s, _ := slot.FromMinutes(m)
	return s
}
