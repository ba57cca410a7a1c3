package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	TypeNormal     = "NORMAL"
	TypeOccasional = "OCCASIONAL"
)

type Request struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	RequesterID  uuid.UUID `gorm:"column:requester_id;type:uuid;not null;index"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	Type         string    `gorm:"column:type;type:varchar(20);not null"`
	Occasion     *string   `gorm:"column:occasion;type:varchar(32)"`
	OccasionDays int       `gorm:"column:occasion_days;not null;default:0"`
	OccasionInfo string    `gorm:"column:occasion_info;type:text"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime;index"`
}

func (Request) TableName() string {
	return "requests"
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r Request) IsNormal() bool {
	return r.Type == TypeNormal
}

func (r Request) IsOccasional() bool {
	return r.Type == TypeOccasional
}
