//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"meeting-room-booking/internal/domain/room"
	reqdto "meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/commands"
	"meeting-room-booking/internal/usecase/shared"
	sharedmock "meeting-room-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRoomFixture(t *testing.T, inTx bool) (*sharedmock.MockRoomRepository, commands.RoomCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	rooms := sharedmock.NewMockRoomRepository(ctrl)

	tx.EXPECT().Rooms().Return(rooms).AnyTimes()
	if inTx {
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})
	}
	return rooms, commands.NewRoomCommands(uow)
}

func TestRoomCommands_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success: trims the name", func(t *testing.T) {
		rooms, cmds := newRoomFixture(t, true)
		rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				assert.Equal(t, "Room D", r.Name())
				return nil
			})

		res, err := cmds.Add(ctx, reqdto.RoomRequest{Name: "  Room D  "})

		require.NoError(t, err)
		assert.Equal(t, "Room D", res.Name)
		assert.NotEqual(t, uuid.Nil, res.ID)
	})

	t.Run("error: duplicate name", func(t *testing.T) {
		rooms, cmds := newRoomFixture(t, true)
		rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create room", nil, infra.KindDuplicateKey))

		_, err := cmds.Add(ctx, reqdto.RoomRequest{Name: "Room A"})

		assert.ErrorIs(t, err, commands.ErrRoomExists)
	})

	t.Run("error: invalid names never reach the store", func(t *testing.T) {
		for name, input := range map[string]string{
			"blank":    "   ",
			"too long": strings.Repeat("x", room.MaxRoomNameLength+1),
		} {
			t.Run(name, func(t *testing.T) {
				_, cmds := newRoomFixture(t, false)

				_, err := cmds.Add(ctx, reqdto.RoomRequest{Name: input})

				assert.True(t, errs.Is(err, commands.ErrInvalidRoomName))
			})
		}
	})
}

func TestRoomCommands_Rename(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		rooms, cmds := newRoomFixture(t, true)
		current, err := room.Reconstruct(id, "Room A")
		require.NoError(t, err)

		rooms.EXPECT().FindByID(gomock.Any(), id).Return(current, nil)
		rooms.EXPECT().Rename(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				assert.Equal(t, "Board Room", r.Name())
				return nil
			})

		res, err := cmds.Rename(ctx, id, reqdto.RoomRequest{Name: "Board Room"})

		require.NoError(t, err)
		assert.Equal(t, &commands.RoomResult{ID: id, Name: "Board Room"}, res)
	})

	t.Run("error: unknown room", func(t *testing.T) {
		rooms, cmds := newRoomFixture(t, true)
		rooms.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := cmds.Rename(ctx, id, reqdto.RoomRequest{Name: "Board Room"})

		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("error: name taken by another room", func(t *testing.T) {
		rooms, cmds := newRoomFixture(t, true)
		current, _ := room.Reconstruct(id, "Room A")

		rooms.EXPECT().FindByID(gomock.Any(), id).Return(current, nil)
		rooms.EXPECT().Rename(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to rename room", nil, infra.KindDuplicateKey))

		_, err := cmds.Rename(ctx, id, reqdto.RoomRequest{Name: "Room B"})

		assert.ErrorIs(t, err, commands.ErrRoomExists)
	})
}

func TestRoomCommands_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	rooms, cmds := newRoomFixture(t, true)
	rooms.EXPECT().Delete(gomock.Any(), id).
		Return(infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

	err := cmds.Delete(ctx, id)

	assert.ErrorIs(t, err, commands.ErrRoomNotFound)
}
