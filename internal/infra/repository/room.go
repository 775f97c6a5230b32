package repository

import (
	"context"

	"meeting-room-booking/internal/domain/room"
	"meeting-room-booking/internal/infra"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	RenameRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.RenameRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	rm, err := room.Reconstruct(row.ID, row.Name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room row", err)
	}
	return rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.queries.CreateRoom(ctx, r.db, sqlc.CreateRoomParams{
		ID:   rm.ID(),
		Name: rm.Name(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Rename(ctx context.Context, rm *room.Room) error {
	n, err := r.queries.RenameRoom(ctx, r.db, sqlc.RenameRoomParams{
		ID:   rm.ID(),
		Name: rm.Name(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to rename room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
