package request

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByIDs(ctx context.Context, ids []string) ([]Request, error)
	FindByRequester(ctx context.Context, requesterID string) ([]Request, error)
	FindAll(ctx context.Context) ([]Request, error)
	FindActiveByRequester(ctx context.Context, requesterID string) ([]Request, error)
	ExistsModifiedSince(ctx context.Context, requesterID string, since time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Request, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []Request
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("start_date ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByRequester(ctx context.Context, requesterID string) ([]Request, error) {
	var list []Request
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("start_date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindAll(ctx context.Context) ([]Request, error) {
	var list []Request
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&list).Error
	return list, err
}

// FindActiveByRequester returns the requests that still hold their period:
// pending and accepted ones.
func (r *repository) FindActiveByRequester(ctx context.Context, requesterID string) ([]Request, error) {
	var list []Request
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Where("status IN ?", []string{StatusPending, StatusAccepted}).
		Order("start_date ASC").
		Find(&list).Error
	return list, err
}

// ExistsModifiedSince reports whether any request changed after since. An
// empty requesterID checks every request.
func (r *repository) ExistsModifiedSince(ctx context.Context, requesterID string, since time.Time) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("updated_at > ?", since)
	if requesterID != "" {
		q = q.Where("requester_id = ?", requesterID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
