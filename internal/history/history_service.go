package history

import (
	"context"
	"database/sql"
	"strings"
	"time"

	historyerrors "go-leave/internal/history/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	WithTx(tx *sql.Tx) Service
	RemainingBalance(ctx context.Context, userID string, asOf *time.Time) (decimal.Decimal, error)
	PostRequest(ctx context.Context, entry Entry) (HistoryResponse, error)
	ReverseRequest(ctx context.Context, userID, requestID, deciderID, comment string) (HistoryResponse, error)
	ListByUser(ctx context.Context, userID string) ([]HistoryResponse, error)
	Adjust(ctx context.Context, adminID string, req AdjustRequest) (HistoryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) WithTx(tx *sql.Tx) Service {
	return &service{repo: s.repo.WithTx(tx), logger: s.logger}
}

// RemainingBalance sums every ledger movement of the user, optionally only
// those recorded up to asOf.
func (s *service) RemainingBalance(ctx context.Context, userID string, asOf *time.Time) (decimal.Decimal, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if _, err := uuid.Parse(userID); err != nil {
		return decimal.Zero, historyerrors.ErrInvalidUserID
	}

	sum, err := s.repo.SumByUser(ctx, userID, asOf)
	if err != nil {
		l.Error("failed to sum leave pool", zap.String("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (s *service) PostRequest(ctx context.Context, entry Entry) (HistoryResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	h, err := newHistory(entry)
	if err != nil {
		l.Warn("post history validation failed", zap.Error(err))
		return HistoryResponse{}, err
	}

	if err := s.repo.Create(ctx, h); err != nil {
		l.Error("failed to post history", zap.String("user_id", entry.UserID), zap.Error(err))
		return HistoryResponse{}, err
	}

	l.Info("history posted",
		zap.String("user_id", entry.UserID),
		zap.String("request_id", entry.RequestID),
		zap.String("days", entry.Days.String()),
	)
	return mapToResponse(*h), nil
}

// ReverseRequest posts the negation of everything previously recorded for
// the request.
func (s *service) ReverseRequest(ctx context.Context, userID, requestID, deciderID, comment string) (HistoryResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if _, err := uuid.Parse(requestID); err != nil {
		return HistoryResponse{}, historyerrors.ErrInvalidRequestID
	}

	sum, err := s.repo.SumByRequest(ctx, requestID)
	if err != nil {
		l.Error("failed to sum request history", zap.String("request_id", requestID), zap.Error(err))
		return HistoryResponse{}, err
	}

	return s.PostRequest(ctx, Entry{
		UserID:    userID,
		RequestID: requestID,
		DeciderID: deciderID,
		Days:      sum.Neg(),
		Comment:   comment,
	})
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]HistoryResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if _, err := uuid.Parse(userID); err != nil {
		return nil, historyerrors.ErrInvalidUserID
	}

	entries, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		l.Error("failed to list history", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	res := make([]HistoryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

// Adjust records a manual grant or correction of a user's pool.
func (s *service) Adjust(ctx context.Context, adminID string, req AdjustRequest) (HistoryResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("adjust leave pool requested",
		zap.String("admin_id", adminID),
		zap.String("user_id", req.UserID),
		zap.String("days", req.Days.String()),
	)

	if req.Days.IsZero() {
		l.Warn("adjust leave pool validation failed", zap.String("user_id", req.UserID))
		return HistoryResponse{}, historyerrors.ErrZeroAdjustment
	}

	return s.PostRequest(ctx, Entry{
		UserID:    req.UserID,
		DeciderID: adminID,
		Days:      req.Days,
		Comment:   strings.TrimSpace(req.Comment),
	})
}

func newHistory(entry Entry) (*History, error) {
	userID, err := uuid.Parse(entry.UserID)
	if err != nil {
		return nil, historyerrors.ErrInvalidUserID
	}

	h := &History{
		ID:      uuid.New(),
		UserID:  userID,
		Days:    entry.Days.Round(2),
		Comment: entry.Comment,
	}

	if entry.RequestID != "" {
		id, err := uuid.Parse(entry.RequestID)
		if err != nil {
			return nil, historyerrors.ErrInvalidRequestID
		}
		h.RequestID = &id
	}
	if entry.DeciderID != "" {
		if id, err := uuid.Parse(entry.DeciderID); err == nil {
			h.DeciderID = &id
		}
	}
	return h, nil
}

func mapToResponse(h History) HistoryResponse {
	res := HistoryResponse{
		ID:        h.ID.String(),
		UserID:    h.UserID.String(),
		Days:      h.Days,
		Comment:   h.Comment,
		CreatedAt: h.CreatedAt,
	}
	if h.RequestID != nil {
		res.RequestID = h.RequestID.String()
	}
	if h.DeciderID != nil {
		res.DeciderID = h.DeciderID.String()
	}
	return res
}
