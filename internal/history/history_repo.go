package history

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/shared/dbtx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *History) error
	SumByUser(ctx context.Context, userID string, asOf *time.Time) (decimal.Decimal, error)
	SumByRequest(ctx context.Context, requestID string) (decimal.Decimal, error)
	FindByUser(ctx context.Context, userID string) ([]History, error)
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

func (r *repository) Create(ctx context.Context, h *History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) SumByUser(ctx context.Context, userID string, asOf *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&History{}).
		Where("user_id = ?", userID)
	if asOf != nil {
		q = q.Where("created_at <= ?", *asOf)
	}
	return sumDays(q)
}

func (r *repository) SumByRequest(ctx context.Context, requestID string) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&History{}).
		Where("request_id = ?", requestID)
	return sumDays(q)
}

func sumDays(q *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := q.Select("SUM(days)").Row().Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]History, error) {
	var entries []History
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
