package acceptance

import (
	"context"
	"database/sql"
	"time"

	acceptanceerrors "go-leave/internal/acceptance/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=acceptance_service.go -destination=mock/acceptance_service_mock.go -package=mock
type Service interface {
	WithTx(tx *sql.Tx) Service
	Insert(ctx context.Context, requestID, leaderID string) (*Acceptance, error)
	InsertCancel(ctx context.Context, requestID, requesterID string) (*Acceptance, error)
	ListByRequest(ctx context.Context, requestID string) ([]Acceptance, error)
	ListPendingByLeader(ctx context.Context, leaderID string) ([]Acceptance, error)
	Get(ctx context.Context, id string) (*Acceptance, error)
	Accept(ctx context.Context, id, deciderID string) (bool, error)
	Reject(ctx context.Context, id, deciderID string) (bool, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("acceptance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("acceptance.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) WithTx(tx *sql.Tx) Service {
	return &service{repo: s.repo.WithTx(tx), now: s.now, logger: s.logger}
}

func (s *service) Insert(ctx context.Context, requestID, leaderID string) (*Acceptance, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	reqUUID, err := uuid.Parse(requestID)
	if err != nil {
		return nil, acceptanceerrors.ErrInvalidAcceptanceID
	}
	leaderUUID, err := uuid.Parse(leaderID)
	if err != nil {
		return nil, acceptanceerrors.ErrInvalidAcceptanceID
	}

	a := &Acceptance{
		ID:        uuid.New(),
		RequestID: reqUUID,
		LeaderID:  leaderUUID,
		Status:    StatusPending,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			l.Error("failed to insert acceptance",
				zap.String("request_id", requestID),
				zap.String("leader_id", leaderID),
				zap.Error(err),
			)
		}
		return nil, mapped
	}

	l.Debug("acceptance inserted",
		zap.String("acceptance_id", a.ID.String()),
		zap.String("request_id", requestID),
		zap.String("leader_id", leaderID),
	)
	return a, nil
}

// InsertCancel creates the record a cancellation is registered against when
// the request never had approvers, with the requester standing in as leader.
func (s *service) InsertCancel(ctx context.Context, requestID, requesterID string) (*Acceptance, error) {
	return s.Insert(ctx, requestID, requesterID)
}

func (s *service) ListByRequest(ctx context.Context, requestID string) ([]Acceptance, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	list, err := s.repo.FindByRequest(ctx, requestID)
	if err != nil {
		l.Error("failed to list acceptances", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *service) ListPendingByLeader(ctx context.Context, leaderID string) ([]Acceptance, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	list, err := s.repo.FindPendingByLeader(ctx, leaderID)
	if err != nil {
		l.Error("failed to list pending acceptances", zap.String("leader_id", leaderID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *service) Get(ctx context.Context, id string) (*Acceptance, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, acceptanceerrors.ErrInvalidAcceptanceID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return a, nil
}

// Accept records an acceptance. Only pending records can be accepted; any
// other state reports false without touching the record.
func (s *service) Accept(ctx context.Context, id, deciderID string) (bool, error) {
	return s.decide(ctx, id, deciderID, StatusAccepted, func(a *Acceptance) bool {
		return a.Status == StatusPending
	})
}

// Reject records a rejection for any record that is not rejected yet.
func (s *service) Reject(ctx context.Context, id, deciderID string) (bool, error) {
	return s.decide(ctx, id, deciderID, StatusRejected, func(a *Acceptance) bool {
		return a.Status != StatusRejected
	})
}

func (s *service) decide(ctx context.Context, id, deciderID, status string, allowed func(*Acceptance) bool) (bool, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	a, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}

	if !allowed(a) {
		l.Warn("acceptance decision refused",
			zap.String("acceptance_id", id),
			zap.String("current_status", a.Status),
			zap.String("target_status", status),
		)
		return false, nil
	}

	deciderUUID, err := uuid.Parse(deciderID)
	if err != nil {
		l.Warn("acceptance decision has invalid decider", zap.String("decider_id", deciderID))
		return false, nil
	}

	now := s.now()
	a.Status = status
	a.DeciderID = &deciderUUID
	a.DecidedAt = &now

	if err := s.repo.Update(ctx, a); err != nil {
		l.Error("failed to save acceptance decision", zap.String("acceptance_id", id), zap.Error(err))
		return false, err
	}

	l.Info("acceptance decided",
		zap.String("acceptance_id", id),
		zap.String("status", status),
		zap.String("decider_id", deciderID),
	)
	return true, nil
}
