package acceptance_test

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/acceptance"
	acceptanceerrors "go-leave/internal/acceptance/errors"
	"go-leave/internal/acceptance/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Insert(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := acceptance.NewService(repo)
	ctx := context.Background()

	requestID := uuid.New()
	leaderID := uuid.New()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *acceptance.Acceptance) error {
		assert.Equal(t, requestID, a.RequestID)
		assert.Equal(t, leaderID, a.LeaderID)
		assert.Equal(t, acceptance.StatusPending, a.Status)
		assert.Nil(t, a.DeciderID)
		return nil
	})

	a, err := svc.Insert(ctx, requestID.String(), leaderID.String())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("UNIQUE constraint failed: acceptances.request_id"))
	_, err = svc.Insert(ctx, requestID.String(), leaderID.String())
	assert.ErrorIs(t, err, acceptanceerrors.ErrAcceptanceExists)
}

func TestService_InsertCancelUsesRequesterAsLeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := acceptance.NewService(repo)
	ctx := context.Background()

	requestID := uuid.New()
	requesterID := uuid.New()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *acceptance.Acceptance) error {
		assert.Equal(t, requesterID, a.LeaderID)
		return nil
	})

	a, err := svc.InsertCancel(ctx, requestID.String(), requesterID.String())
	require.NoError(t, err)
	assert.Equal(t, acceptance.StatusPending, a.Status)
}

func TestService_Accept(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	deciderID := uuid.New()

	tests := []struct {
		name    string
		status  string
		want    bool
		updated bool
	}{
		{"pending is accepted", acceptance.StatusPending, true, true},
		{"accepted stays", acceptance.StatusAccepted, false, false},
		{"rejected cannot be accepted", acceptance.StatusRejected, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			svc := acceptance.NewService(repo)

			repo.EXPECT().FindByID(ctx, id.String()).Return(&acceptance.Acceptance{ID: id, Status: tt.status}, nil)
			if tt.updated {
				repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *acceptance.Acceptance) error {
					assert.Equal(t, acceptance.StatusAccepted, a.Status)
					assert.Equal(t, deciderID, *a.DeciderID)
					assert.NotNil(t, a.DecidedAt)
					return nil
				})
			}

			ok, err := svc.Accept(ctx, id.String(), deciderID.String())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestService_Reject(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	deciderID := uuid.New()

	tests := []struct {
		name    string
		status  string
		want    bool
		updated bool
	}{
		{"pending is rejected", acceptance.StatusPending, true, true},
		{"accepted can be rejected", acceptance.StatusAccepted, true, true},
		{"rejected stays", acceptance.StatusRejected, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			svc := acceptance.NewService(repo)

			repo.EXPECT().FindByID(ctx, id.String()).Return(&acceptance.Acceptance{ID: id, Status: tt.status}, nil)
			if tt.updated {
				repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			}

			ok, err := svc.Reject(ctx, id.String(), deciderID.String())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestService_GetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := acceptance.NewService(repo)
	ctx := context.Background()
	id := uuid.NewString()

	repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, acceptanceerrors.ErrAcceptanceNotFound)

	_, err = svc.Get(ctx, "bad")
	assert.ErrorIs(t, err, acceptanceerrors.ErrInvalidAcceptanceID)
}
