package converter

import (
	"time"

	"meeting-room-booking/internal/domain/booking"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	date, err := pgconv.DateToPgtype(b.Date())
	if err != nil {
		return sqlc.CreateBookingParams{}, errs.Wrap(err, "invalid booking date")
	}
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserName:    b.UserName(),
		Room:        b.Room(),
		BookingDate: date,
		StartTime:   b.Start(),
		EndTime:     b.End(),
		People:      pgconv.Int4PtrToPgtype(b.People()),
		Remark:      b.Remark(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}, nil
}

func BookingToUpdateParams(b *booking.Booking) (sqlc.UpdateBookingParams, error) {
	p, err := BookingToCreateParams(b)
	if err != nil {
		return sqlc.UpdateBookingParams{}, err
	}
	return sqlc.UpdateBookingParams{
		ID:          p.ID,
		UserName:    p.UserName,
		Room:        p.Room,
		BookingDate: p.BookingDate,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		People:      p.People,
		Remark:      p.Remark,
	}, nil
}

func BookingToArchiveParams(b *booking.Booking, archivedAt time.Time) (sqlc.ArchiveBookingParams, error) {
	p, err := BookingToCreateParams(b)
	if err != nil {
		return sqlc.ArchiveBookingParams{}, err
	}
	return sqlc.ArchiveBookingParams{
		ID:          p.ID,
		UserName:    p.UserName,
		Room:        p.Room,
		BookingDate: p.BookingDate,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		People:      p.People,
		Remark:      p.Remark,
		CreatedAt:   p.CreatedAt,
		ArchivedAt:  pgconv.TimeToPgtype(archivedAt),
	}, nil
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	date, err := pgconv.DateFromPgtype(row.BookingDate)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		row.ID,
		row.UserName,
		row.Room,
		date,
		row.StartTime,
		row.EndTime,
		pgconv.IntPtrFromPgtype(row.People),
		row.Remark,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", row.ID)
		}
		out = append(out, b)
	}
	return out, nil
}
