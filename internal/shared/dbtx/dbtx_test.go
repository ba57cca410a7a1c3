package dbtx_test

import (
	"testing"

	"go-leave/internal/shared/dbtx"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type note struct {
	ID   uint `gorm:"primaryKey"`
	Text string
}

func TestBind(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.AutoMigrate(&note{}))

	assert.Same(t, db, dbtx.Bind(db, nil))

	t.Run("rollback discards writes", func(t *testing.T) {
		tx, err := sqlDB.Begin()
		assert.NoError(t, err)

		assert.NoError(t, dbtx.Bind(db, tx).Create(&note{Text: "draft"}).Error)
		assert.NoError(t, tx.Rollback())

		var count int64
		assert.NoError(t, db.Model(&note{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("commit keeps writes", func(t *testing.T) {
		tx, err := sqlDB.Begin()
		assert.NoError(t, err)

		assert.NoError(t, dbtx.Bind(db, tx).Create(&note{Text: "kept"}).Error)
		assert.NoError(t, tx.Commit())

		var count int64
		assert.NoError(t, db.Model(&note{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
