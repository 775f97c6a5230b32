package booking

import (
	"strings"
	"time"

	"meeting-room-booking/internal/domain/slot"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const DateLayout = "2006-01-02"

// Candidate is a requested booking before it has been accepted.
type Candidate struct {
	Room     string
	Date     string
	Start    string
	End      string
	UserName string
	People   *int
	Remark   string
}

// CanonicalRoom is the form a room name is stored, locked and looked up
// under: trimmed and NFC-composed, the same as room.NormalizeName.
func CanonicalRoom(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Normalize trims every text field and canonicalizes the room.
func (c Candidate) Normalize() Candidate {
	c.Room = CanonicalRoom(c.Room)
	c.Date = strings.TrimSpace(c.Date)
	c.Start = strings.TrimSpace(c.Start)
	c.End = strings.TrimSpace(c.End)
	c.UserName = strings.TrimSpace(c.UserName)
	c.Remark = strings.TrimSpace(c.Remark)
	return c
}

type Booking struct {
	id        uuid.UUID
	userName  string
	room      string
	date      string
	interval  slot.Interval
	people    *int
	remark    string
	createdAt time.Time
}

// Reconstruct rebuilds a stored booking. Stored rows have already been validated.
func Reconstruct(id uuid.UUID, userName, room, date, start, end string, people *int, remark string, createdAt time.Time) (*Booking, error) {
	interval, err := slot.ParseInterval(start, end)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:        id,
		userName:  userName,
		room:      room,
		date:      date,
		interval:  interval,
		people:    people,
		remark:    remark,
		createdAt: createdAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserName() string        { return b.userName }
func (b *Booking) Room() string            { return b.room }
func (b *Booking) Date() string            { return b.date }
func (b *Booking) Interval() slot.Interval { return b.interval }
func (b *Booking) People() *int            { return b.people }
func (b *Booking) Remark() string          { return b.remark }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }

func (b *Booking) Start() string {
	s, _ := slot.FromMinutes(b.interval.Start)
	return s
}

// End formats the end minute. 24:00 cannot occur because the grid stops at the day end.
func (b *Booking) End() string {
	s, _ := slot.FromMinutes(b.interval.End)
	return s
}

// StartsAt combines date and start in loc.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return combine(b.date, b.interval.Start, loc)
}

func (b *Booking) EndsAt(loc *time.Location) (time.Time, error) {
	return combine(b.date, b.interval.End, loc)
}

// IsExpired reports whether the booking's end instant is strictly before now.
func (b *Booking) IsExpired(now time.Time) bool {
	end, err := b.EndsAt(now.Location())
	if err != nil {
		return false
	}
	return end.Before(now)
}

func combine(date string, minutes int, loc *time.Location) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
