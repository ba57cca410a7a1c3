package acceptance_test

import (
	"context"
	"testing"

	"go-leave/internal/acceptance"
	acceptanceerrors "go-leave/internal/acceptance/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&acceptance.Acceptance{}))
	return db
}

func TestRepository_DecisionFlow(t *testing.T) {
	db := openTestDB(t)
	svc := acceptance.NewService(acceptance.NewRepository(db))
	ctx := context.Background()

	requestID := uuid.NewString()
	alice := uuid.NewString()
	bob := uuid.NewString()

	a1, err := svc.Insert(ctx, requestID, alice)
	require.NoError(t, err)
	_, err = svc.Insert(ctx, requestID, bob)
	require.NoError(t, err)

	_, err = svc.Insert(ctx, requestID, alice)
	assert.ErrorIs(t, err, acceptanceerrors.ErrAcceptanceExists)

	pending, err := svc.ListPendingByLeader(ctx, alice)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	ok, err := svc.Accept(ctx, a1.ID.String(), alice)
	require.NoError(t, err)
	assert.True(t, ok)

	pending, err = svc.ListPendingByLeader(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, pending)

	list, err := svc.ListByRequest(ctx, requestID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	statuses := map[string]string{}
	for _, a := range list {
		statuses[a.LeaderID.String()] = a.Status
	}
	assert.Equal(t, acceptance.StatusAccepted, statuses[alice])
	assert.Equal(t, acceptance.StatusPending, statuses[bob])
}
