package history_test

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/history"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

	require.NoError(t, db.AutoMigrate(&history.History{}))
	return db
}

func days(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_Sums(t *testing.T) {
	db := openTestDB(t)
	repo := history.NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	requestID := uuid.New()
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &history.History{UserID: userID, Days: days("26"), Comment: "grant", CreatedAt: jan}))
	require.NoError(t, repo.Create(ctx, &history.History{UserID: userID, RequestID: &requestID, Days: days("-3.5"), CreatedAt: jul}))
	require.NoError(t, repo.Create(ctx, &history.History{UserID: uuid.New(), Days: days("10"), CreatedAt: jan}))

	total, err := repo.SumByUser(ctx, userID.String(), nil)
	require.NoError(t, err)
	assert.True(t, total.Equal(days("22.5")), total.String())

	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	early, err := repo.SumByUser(ctx, userID.String(), &asOf)
	require.NoError(t, err)
	assert.True(t, early.Equal(days("26")), early.String())

	byRequest, err := repo.SumByRequest(ctx, requestID.String())
	require.NoError(t, err)
	assert.True(t, byRequest.Equal(days("-3.5")), byRequest.String())

	empty, err := repo.SumByUser(ctx, uuid.NewString(), nil)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	entries, err := repo.FindByUser(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, requestID, *entries[0].RequestID)
}

func TestRepository_WithTxRollsBack(t *testing.T) {
	db := openTestDB(t)
	repo := history.NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	sqlDB, err := db.DB()
	require.NoError(t, err)

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)

	qtx := repo.WithTx(tx)
	require.NoError(t, qtx.Create(ctx, &history.History{UserID: userID, Days: days("5")}))

	inside, err := qtx.SumByUser(ctx, userID.String(), nil)
	require.NoError(t, err)
	assert.True(t, inside.Equal(days("5")))

	require.NoError(t, tx.Rollback())

	after, err := repo.SumByUser(ctx, userID.String(), nil)
	require.NoError(t, err)
	assert.True(t, after.IsZero())
}
