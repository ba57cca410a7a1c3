package user_test

import (
	"context"
	"testing"

	"go-leave/internal/user"

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

	require.NoError(t, db.AutoMigrate(&user.User{}, &user.Team{}, &user.TeamMember{}))
	return db
}

func TestRepository_FindTeamLeaderMails(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	worker := user.User{Mail: "worker@example.com", Name: "Worker", Role: user.RoleWorker}
	alice := user.User{Mail: "alice@example.com", Name: "Alice", Role: user.RoleLeader}
	bob := user.User{Mail: "bob@example.com", Name: "Bob", Role: user.RoleLeader}
	require.NoError(t, db.Create(&worker).Error)
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	backend := user.Team{Name: "Backend", LeaderID: bob.ID}
	frontend := user.Team{Name: "Frontend", LeaderID: alice.ID}
	platform := user.Team{Name: "Platform", LeaderID: bob.ID}
	require.NoError(t, db.Create(&backend).Error)
	require.NoError(t, db.Create(&frontend).Error)
	require.NoError(t, db.Create(&platform).Error)

	for _, teamID := range []uuid.UUID{backend.ID, frontend.ID, platform.ID} {
		require.NoError(t, db.Create(&user.TeamMember{TeamID: teamID, UserID: worker.ID}).Error)
	}

	repo := user.NewRepository(db)

	mails, err := repo.FindTeamLeaderMails(ctx, worker.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, mails)

	mails, err = repo.FindTeamLeaderMails(ctx, alice.ID.String())
	require.NoError(t, err)
	assert.Empty(t, mails)
}

func TestRepository_FindByRoleAndMail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	admin := user.User{Mail: "admin@example.com", Name: "Admin", Role: user.RoleAdmin}
	worker := user.User{Mail: "worker@example.com", Name: "Worker", Role: user.RoleWorker}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&worker).Error)

	repo := user.NewRepository(db)

	admins, err := repo.FindByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)

	found, err := repo.FindFirstByMail(ctx, "worker@example.com")
	require.NoError(t, err)
	assert.Equal(t, worker.ID, found.ID)
	assert.True(t, found.WorkTime.Equal(decimal.NewFromInt(1)))
	assert.True(t, found.IsActive)

	_, err = repo.FindFirstByMail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
