// Package legacy reads the SQLite database of the previous booking app so its
// rows can be copied into PostgreSQL.
package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"meeting-room-booking/internal/pkg/errs"

	_ "github.com/mattn/go-sqlite3"
)

var ErrInvalidTimestamp = errs.New("invalid legacy timestamp")

// Python isoformat() output, with and without fractional seconds.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

type Room struct {
	ID   int64
	Name string
}

type Booking struct {
	ID        int64
	UserName  string
	Room      string
	Date      string
	StartTime string
	EndTime   string
	People    *int
	Remark    string
	CreatedAt time.Time
}

type HistoryRecord struct {
	Booking
	ArchivedAt time.Time
}

// Reader is a read-only view over the legacy tables rooms, bookings and
// bookings_history. Timestamps carry no zone and are read in loc.
type Reader struct {
	db  *sql.DB
	loc *time.Location
}

func Open(path string, loc *time.Location) (*Reader, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return NewReader(db, loc), nil
}

func NewReader(db *sql.DB, loc *time.Location) *Reader {
	if loc == nil {
		loc = time.Local
	}
	return &Reader{db: db, loc: loc}
}

func (r *Reader) Close() error {
	return r.db.Close()
}

func (r *Reader) Rooms(ctx context.Context) ([]Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM rooms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *Reader) Bookings(ctx context.Context) ([]Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_name, room, date, start_time, end_time, people, remark, created_at
		FROM bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var (
			b       Booking
			people  sql.NullInt64
			remark  sql.NullString
			created string
		)
		if err := rows.Scan(&b.ID, &b.UserName, &b.Room, &b.Date, &b.StartTime, &b.EndTime, &people, &remark, &created); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		if err := r.fill(&b, people, remark, created); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *Reader) History(ctx context.Context) ([]HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_name, room, date, start_time, end_time, people, remark, created_at, archived_at
		FROM bookings_history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query bookings_history: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var (
			h                 HistoryRecord
			people            sql.NullInt64
			remark            sql.NullString
			created, archived string
		)
		if err := rows.Scan(&h.ID, &h.UserName, &h.Room, &h.Date, &h.StartTime, &h.EndTime, &people, &remark, &created, &archived); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		if err := r.fill(&h.Booking, people, remark, created); err != nil {
			return nil, err
		}
		at, err := r.parseTimestamp(archived)
		if err != nil {
			return nil, errs.Wrapf(err, "history %d archived_at", h.ID)
		}
		h.ArchivedAt = at
		records = append(records, h)
	}
	return records, rows.Err()
}

func (r *Reader) fill(b *Booking, people sql.NullInt64, remark sql.NullString, created string) error {
	if people.Valid {
		v := int(people.Int64)
		b.People = &v
	}
	b.Remark = remark.String

	at, err := r.parseTimestamp(created)
	if err != nil {
		return errs.Wrapf(err, "booking %d created_at", b.ID)
	}
	b.CreatedAt = at
	return nil
}

func (r *Reader) parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, r.loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, errs.Mark(errs.New(fmt.Sprintf("unparseable timestamp %q", s)), ErrInvalidTimestamp)
}
