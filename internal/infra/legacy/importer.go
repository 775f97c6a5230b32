package legacy

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"meeting-room-booking/internal/domain/booking"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/pkg/pgconv"
	"meeting-room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// importNamespace keys the deterministic ids given to legacy integer rows, so a
// booking and its history record keep the same id and re-runs are no-ops.
var importNamespace = uuid.MustParse("5b0e7c4c-1f7a-4d6e-9a55-3c2d8f0b9e61")

// Source is the legacy side of an import.
type Source interface {
	Rooms(ctx context.Context) ([]Room, error)
	Bookings(ctx context.Context) ([]Booking, error)
	History(ctx context.Context) ([]HistoryRecord, error)
}

// ImportQueries is the subset of sqlc queries the importer writes with.
type ImportQueries interface {
	InsertRoomIgnoreConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRoomIgnoreConflictParams) (int64, error)
	InsertBookingIgnoreConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingIgnoreConflictParams) (int64, error)
	ArchiveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveBookingParams) (int64, error)
}

// Counts reports rows read from the source and rows actually inserted.
type Counts struct {
	Rooms, RoomsInserted       int
	Bookings, BookingsInserted int
	History, HistoryInserted   int
}

func (c Counts) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "rooms:    %d read, %d inserted\n", c.Rooms, c.RoomsInserted)
	fmt.Fprintf(&sb, "bookings: %d read, %d inserted\n", c.Bookings, c.BookingsInserted)
	fmt.Fprintf(&sb, "history:  %d read, %d inserted\n", c.History, c.HistoryInserted)
	return sb.String()
}

type Importer struct {
	src Source
	db  shared.TxBeginner
	q   ImportQueries
}

func NewImporter(src Source, db shared.TxBeginner, q ImportQueries) *Importer {
	return &Importer{src: src, db: db, q: q}
}

// Run copies everything in one transaction. With dryRun it only reads.
func (im *Importer) Run(ctx context.Context, dryRun bool) (Counts, error) {
	rooms, err := im.src.Rooms(ctx)
	if err != nil {
		return Counts{}, err
	}
	bookings, err := im.src.Bookings(ctx)
	if err != nil {
		return Counts{}, err
	}
	history, err := im.src.History(ctx)
	if err != nil {
		return Counts{}, err
	}

	counts := Counts{Rooms: len(rooms), Bookings: len(bookings), History: len(history)}
	if dryRun {
		return counts, nil
	}

	return shared.RunInTx(ctx, im.db, func(tx sqlc.DBTX) (Counts, error) {
		for _, r := range rooms {
			n, err := im.q.InsertRoomIgnoreConflict(ctx, tx, sqlc.InsertRoomIgnoreConflictParams{
				ID:   legacyID("room", r.ID),
				Name: booking.CanonicalRoom(r.Name),
			})
			if err != nil {
				return Counts{}, errs.Wrapf(err, "insert room %d", r.ID)
			}
			counts.RoomsInserted += int(n)
		}

		for _, b := range bookings {
			params, err := bookingParams(b)
			if err != nil {
				return Counts{}, err
			}
			n, err := im.q.InsertBookingIgnoreConflict(ctx, tx, params)
			if err != nil {
				return Counts{}, errs.Wrapf(err, "insert booking %d", b.ID)
			}
			counts.BookingsInserted += int(n)
		}

		for _, h := range history {
			params, err := bookingParams(h.Booking)
			if err != nil {
				return Counts{}, err
			}
			n, err := im.q.ArchiveBooking(ctx, tx, sqlc.ArchiveBookingParams{
				ID:          params.ID,
				UserName:    params.UserName,
				Room:        params.Room,
				BookingDate: params.BookingDate,
				StartTime:   params.StartTime,
				EndTime:     params.EndTime,
				People:      params.People,
				Remark:      params.Remark,
				CreatedAt:   params.CreatedAt,
				ArchivedAt:  pgconv.TimeToPgtype(h.ArchivedAt),
			})
			if err != nil {
				return Counts{}, errs.Wrapf(err, "insert history %d", h.ID)
			}
			counts.HistoryInserted += int(n)
		}

		return counts, nil
	})
}

func bookingParams(b Booking) (sqlc.InsertBookingIgnoreConflictParams, error) {
	date, err := pgconv.DateToPgtype(b.Date)
	if err != nil {
		return sqlc.InsertBookingIgnoreConflictParams{}, errs.Wrapf(err, "booking %d date %q", b.ID, b.Date)
	}
	return sqlc.InsertBookingIgnoreConflictParams{
		ID:          legacyID("booking", b.ID),
		UserName:    b.UserName,
		Room:        booking.CanonicalRoom(b.Room),
		BookingDate: date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		People:      pgconv.Int4PtrToPgtype(b.People),
		Remark:      strings.TrimSpace(b.Remark),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt.In(time.UTC)),
	}, nil
}

// legacyID maps a legacy integer key to a stable UUID. Bookings and history
// share the "booking" kind because the old app archived rows under their id.
func legacyID(kind string, id int64) uuid.UUID {
	return uuid.NewSHA1(importNamespace, []byte(kind+":"+strconv.FormatInt(id, 10)))
}
