package commands

import (
	"context"
	"log/slog"

	"meeting-room-booking/internal/domain/booking"
	reqdto "meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/queries"
	"meeting-room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.BookingRequest) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	engine         *booking.Engine
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, engine *booking.Engine, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		engine:         engine,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.BookingRequest) (*queries.BookingView, error) {
	candidate := req.ToDomain().Normalize()

	// Reject malformed input before taking the room-day lock
	if err := c.engine.Validate(candidate, nil, uuid.Nil); err != nil {
		return nil, err
	}

	id := uuid.New()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := lockAndList(ctx, tx, candidate.Room, candidate.Date)
		if err != nil {
			return err
		}
		accepted, err := c.engine.Accept(id, candidate, existing, uuid.Nil, c.clock.Now())
		if err != nil {
			return err
		}
		if _, err := tx.Bookings().Create(ctx, accepted); err != nil {
			return mapBookingWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", id,
		"room", candidate.Room,
		"date", candidate.Date,
		"start", candidate.Start,
		"end", candidate.End)

	// Read-after-write: Get the complete booking view from read store
	view, err := c.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return mapBookingWriteErr(err)
		}

		candidate := req.ToDomain(current).Normalize()
		if err := c.engine.Validate(candidate, nil, id); err != nil {
			return err
		}

		existing, err := lockAndList(ctx, tx, candidate.Room, candidate.Date)
		if err != nil {
			return err
		}
		replaced, err := c.engine.Accept(id, candidate, existing, id, current.CreatedAt())
		if err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, replaced); err != nil {
			return mapBookingWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking updated", "booking_id", id)

	view, err := c.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			return mapBookingWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("booking deleted", "booking_id", id)
	return nil
}

// lockAndList serializes writers of the room-day, then reads its bookings
// under the lock.
func lockAndList(ctx context.Context, tx shared.Tx, room, date string) ([]*booking.Booking, error) {
	if err := tx.Bookings().LockRoomDay(ctx, room, date); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	existing, err := tx.Bookings().ListByRoomDate(ctx, room, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return existing, nil
}

func mapBookingWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		// The unique (room, date, start) backstop fired
		return &booking.ValidationError{Kind: booking.KindSlotConflict}
	case errs.Is(err, ErrDatabaseOperationFailed):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
