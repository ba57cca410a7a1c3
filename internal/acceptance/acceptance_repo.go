package acceptance

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=acceptance_repo.go -destination=mock/acceptance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Acceptance) error
	FindByID(ctx context.Context, id string) (*Acceptance, error)
	FindByRequest(ctx context.Context, requestID string) ([]Acceptance, error)
	FindPendingByLeader(ctx context.Context, leaderID string) ([]Acceptance, error)
	Update(ctx context.Context, a *Acceptance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, a *Acceptance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Acceptance, error) {
	var a Acceptance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByRequest(ctx context.Context, requestID string) ([]Acceptance, error) {
	var list []Acceptance
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindPendingByLeader(ctx context.Context, leaderID string) ([]Acceptance, error) {
	var list []Acceptance
	err := r.db.WithContext(ctx).
		Where("leader_id = ?", leaderID).
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) Update(ctx context.Context, a *Acceptance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
