package commands

import (
	"context"
	"log/slog"

	"meeting-room-booking/internal/domain/room"
	reqdto "meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound    = errs.New("room not found")
	ErrRoomExists      = errs.New("a room with that name already exists")
	ErrInvalidRoomName = errs.New("invalid room name")
)

type RoomResult struct {
	ID   uuid.UUID
	Name string
}

type RoomCommands interface {
	Add(ctx context.Context, req reqdto.RoomRequest) (*RoomResult, error)
	Rename(ctx context.Context, id uuid.UUID, req reqdto.RoomRequest) (*RoomResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Add(ctx context.Context, req reqdto.RoomRequest) (*RoomResult, error) {
	rm, err := room.NewRoom(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomName)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, rm)
	})
	if err != nil {
		return nil, mapRoomWriteErr(err)
	}

	slog.Info("room added", "room_id", rm.ID(), "name", rm.Name())
	return &RoomResult{ID: rm.ID(), Name: rm.Name()}, nil
}

// Rename changes only the room record. Existing bookings keep the name they
// were made under.
func (c *roomCommandsImpl) Rename(ctx context.Context, id uuid.UUID, req reqdto.RoomRequest) (*RoomResult, error) {
	var renamed *room.Room
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := rm.Rename(req.Name); err != nil {
			return errs.Mark(err, ErrInvalidRoomName)
		}
		if err := tx.Rooms().Rename(ctx, rm); err != nil {
			return err
		}
		renamed = rm
		return nil
	})
	if err != nil {
		return nil, mapRoomWriteErr(err)
	}

	slog.Info("room renamed", "room_id", id, "name", renamed.Name())
	return &RoomResult{ID: renamed.ID(), Name: renamed.Name()}, nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, id)
	})
	if err != nil {
		return mapRoomWriteErr(err)
	}

	slog.Info("room deleted", "room_id", id)
	return nil
}

func mapRoomWriteErr(err error) error {
	switch {
	case errs.Is(err, ErrInvalidRoomName):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRoomNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrRoomExists
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
