//go:build unit

package commands_test

import (
	"context"
	"testing"

	"meeting-room-booking/internal/infra"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/commands"
	"meeting-room-booking/internal/usecase/shared"
	sharedmock "meeting-room-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHistoryCommands_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name      string
		repoErr   error
		expectErr error
	}{
		{name: "success"},
		{name: "not found", repoErr: infra.WrapRepoErr("history record not found", nil, infra.KindNotFound), expectErr: commands.ErrHistoryNotFound},
		{name: "database failure", repoErr: infra.WrapRepoErr("failed to delete history", assert.AnError), expectErr: commands.ErrDatabaseOperationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			tx := sharedmock.NewMockTx(ctrl)
			history := sharedmock.NewMockHistoryRepository(ctrl)

			tx.EXPECT().History().Return(history)
			uow.EXPECT().Within(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
					return fn(ctx, tx)
				})
			history.EXPECT().Delete(gomock.Any(), id).Return(tc.repoErr)

			err := commands.NewHistoryCommands(uow).Delete(ctx, id)

			if tc.expectErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
		})
	}
}
