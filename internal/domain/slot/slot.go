// Package slot holds the half-hour grid and interval arithmetic every
// availability decision is built on. Times are minutes since midnight.
package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DayStart = "09:00"
	DayEnd   = "17:00"
	Step     = 30

	MinutesPerDay = 24 * 60
)

var (
	ErrParse      = errors.New("malformed time of day")
	ErrOutOfRange = errors.New("minutes out of range")
)

// ToMinutes converts zero-padded 24h "HH:MM" to minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, hhmm)
	}
	hour, err := parseDigits(h)
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrParse, hhmm)
	}
	minute, err := parseDigits(m)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrParse, hhmm)
	}
	return hour*60 + minute, nil
}

// strconv.Atoi alone would accept signs.
func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrParse
		}
	}
	return strconv.Atoi(s)
}

func FromMinutes(m int) (string, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, m)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

func mustFormat(m int) string {
	s, err := FromMinutes(m)
	if err != nil {
		panic(err)
	}
	return s
}

// Overlaps is the single conflict predicate for half-open intervals.
// Touching intervals ([a,b) and [b,c)) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Day is a bookable window sampled every Step minutes.
type Day struct {
	start int
	end   int
}

// DefaultDay is the 09:00-17:00 window.
var DefaultDay = Day{start: 9 * 60, end: 17 * 60}

func NewDay(dayStart, dayEnd string) (Day, error) {
	start, err := ToMinutes(dayStart)
	if err != nil {
		return Day{}, err
	}
	end, err := ToMinutes(dayEnd)
	if err != nil {
		return Day{}, err
	}
	if end <= start || (end-start)%Step != 0 {
		return Day{}, fmt.Errorf("%w: day window %s-%s", ErrOutOfRange, dayStart, dayEnd)
	}
	return Day{start: start, end: end}, nil
}

func (d Day) StartMinutes() int { return d.start }
func (d Day) EndMinutes() int   { return d.end }

// Grid lists every grid point, both endpoints included.
func (d Day) Grid() []string {
	out := make([]string, 0, (d.end-d.start)/Step+1)
	for m := d.start; m <= d.end; m += Step {
		out = append(out, mustFormat(m))
	}
	return out
}

// StartSlots lists the grid points a booking may start on (the day end is excluded).
func (d Day) StartSlots() []string {
	out := make([]string, 0, (d.end-d.start)/Step)
	for m := d.start; m < d.end; m += Step {
		out = append(out, mustFormat(m))
	}
	return out
}

// OnGrid reports whether m is one of the day's grid points.
func (d Day) OnGrid(m int) bool {
	return m >= d.start && m <= d.end && (m-d.start)%Step == 0
}

func Grid(dayStart, dayEnd string) ([]string, error) {
	d, err := NewDay(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return d.Grid(), nil
}

func StartSlots(dayStart, dayEnd string) ([]string, error) {
	d, err := NewDay(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return d.StartSlots(), nil
}

// Interval is a parsed [Start, End) pair in minutes.
type Interval struct {
	Start int
	End   int
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i.Start, i.End, o.Start, o.End)
}
