package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "ADMIN"
	RoleLeader = "LEADER"
	RoleWorker = "WORKER"
)

type User struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Mail      string          `gorm:"column:mail;type:varchar(255);not null;uniqueIndex"`
	Name      string          `gorm:"column:name;type:varchar(255)"`
	Role      string          `gorm:"column:role;type:varchar(20);not null;default:WORKER"`
	WorkTime  decimal.Decimal `gorm:"column:work_time;type:numeric(4,2);not null;default:1"`
	IsActive  bool            `gorm:"column:is_active;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullTimeShare is the fraction of a full working day the user is employed
// for. Unset values count as full time.
func (u User) FullTimeShare() decimal.Decimal {
	if u.WorkTime.IsPositive() {
		return u.WorkTime
	}
	return decimal.NewFromInt(1)
}

type Team struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	LeaderID  uuid.UUID `gorm:"column:leader_id;type:uuid;not null;index"`
	Leader    *User     `gorm:"foreignKey:LeaderID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TeamMember struct {
	TeamID uuid.UUID `gorm:"column:team_id;type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;index"`
}
