package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// History is one signed movement of a user's leave pool, in days.
type History struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index"`
	RequestID *uuid.UUID      `gorm:"column:request_id;type:uuid;index"`
	DeciderID *uuid.UUID      `gorm:"column:decider_id;type:uuid"`
	Days      decimal.Decimal `gorm:"column:days;type:numeric(8,2);not null"`
	Comment   string          `gorm:"column:comment;type:text"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (History) TableName() string {
	return "histories"
}

func (h *History) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
