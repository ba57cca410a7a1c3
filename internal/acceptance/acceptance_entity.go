package acceptance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// Acceptance is one approver's decision slot for a leave request.
type Acceptance struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	RequestID uuid.UUID  `gorm:"column:request_id;type:uuid;not null;uniqueIndex:uq_acceptance_request_leader"`
	LeaderID  uuid.UUID  `gorm:"column:leader_id;type:uuid;not null;uniqueIndex:uq_acceptance_request_leader;index"`
	Status    string     `gorm:"column:status;type:varchar(20);not null"`
	DeciderID *uuid.UUID `gorm:"column:decider_id;type:uuid"`
	DecidedAt *time.Time `gorm:"column:decided_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (a *Acceptance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a Acceptance) IsAccepted() bool {
	return a.Status == StatusAccepted
}

func (a Acceptance) IsRejected() bool {
	return a.Status == StatusRejected
}

func (a Acceptance) HasDecider() bool {
	return a.DeciderID != nil && *a.DeciderID != uuid.Nil
}
