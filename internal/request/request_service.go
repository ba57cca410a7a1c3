package request

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-leave/internal/acceptance"
	acceptanceerrors "go-leave/internal/acceptance/errors"
	"go-leave/internal/events"
	"go-leave/internal/history"
	"go-leave/internal/holiday"
	"go-leave/internal/messaging/kafka"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/user"
	usererrors "go-leave/internal/user/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	reasonNotEnoughDays   = "not enough days"
	reasonNotPending      = "not pending"
	reasonAlreadyRejected = "already rejected"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	SubmitNormal(ctx context.Context, requesterID, startDate, endDate string) (RequestResponse, error)
	SubmitOccasional(ctx context.Context, requesterID, startDate, occasion string) (RequestResponse, error)
	Accept(ctx context.Context, requestID, deciderID string) (DecisionResponse, error)
	Reject(ctx context.Context, requestID, deciderID string) (DecisionResponse, error)
	Cancel(ctx context.Context, requestID, actorID string) (DecisionResponse, error)
	DecideAcceptance(ctx context.Context, acceptanceID, deciderID string, accept bool) (acceptance.AcceptanceResponse, error)
	ListPendingForLeader(ctx context.Context, leaderID string) ([]acceptance.PendingAcceptanceResponse, error)
	GetByID(ctx context.Context, id string) (RequestResponse, error)
	GetByRequester(ctx context.Context, requesterID string) ([]RequestResponse, error)
	GetAll(ctx context.Context) ([]RequestResponse, error)
	GetByRequesterSince(ctx context.Context, requesterID string, since time.Time) ([]RequestResponse, error)
	GetAllSince(ctx context.Context, since time.Time) ([]RequestResponse, error)
	Occasions() []OccasionResponse
}

type service struct {
	db          *sql.DB
	repo        Repository
	acceptances acceptance.Service
	history     history.Service
	holidays    holiday.Service
	users       user.Service
	outbox      kafka.OutboxRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	acceptances acceptance.Service,
	ledger history.Service,
	holidays holiday.Service,
	users user.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		acceptances: acceptances,
		history:     ledger,
		holidays:    holidays,
		users:       users,
		outbox:      outbox,
		now:         time.Now,
		logger:      l,
	}
}

// txScope holds the collaborators bound to one open transaction.
type txScope struct {
	repo        Repository
	acceptances acceptance.Service
	history     history.Service
	outbox      kafka.OutboxRepository
}

func (s *service) bind(tx *sql.Tx) txScope {
	return txScope{
		repo:        s.repo.WithTx(tx),
		acceptances: s.acceptances.WithTx(tx),
		history:     s.history.WithTx(tx),
		outbox:      s.outbox.WithTx(tx),
	}
}

func (s *service) SubmitNormal(ctx context.Context, requesterID, startDate, endDate string) (RequestResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("submit normal request",
		zap.String("requester_id", requesterID),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
	)

	start, err := parseDate(startDate)
	if err != nil {
		return RequestResponse{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return RequestResponse{}, err
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return RequestResponse{}, err
	}

	required, err := s.requiredFor(ctx, requester, start, end)
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("submit normal begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()
	scope := s.bind(tx)

	remaining, err := scope.history.RemainingBalance(ctx, requesterID, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	if remaining.LessThan(required) {
		l.Warn("submit normal not enough days",
			zap.String("requester_id", requesterID),
			zap.String("remaining", remaining.String()),
			zap.String("required", required.String()),
		)
		return RequestResponse{}, requesterrors.ErrNotEnoughDays
	}

	if !validatePeriod(start, end, s.now()) {
		l.Warn("submit normal invalid period",
			zap.String("start_date", startDate),
			zap.String("end_date", endDate),
		)
		return RequestResponse{}, requesterrors.ErrInvalidPeriod
	}

	active, err := scope.repo.FindActiveByRequester(ctx, requesterID)
	if err != nil {
		l.Error("submit normal overlap lookup failed", zap.Error(err))
		return RequestResponse{}, err
	}
	for _, r := range active {
		if r.IsNormal() && Overlaps(start, end, r.StartDate, r.EndDate) {
			l.Warn("submit normal overlap detected",
				zap.String("requester_id", requesterID),
				zap.String("overlapping_request_id", r.ID.String()),
			)
			return RequestResponse{}, requesterrors.ErrRequestOverlapping.WithDetails(map[string]string{
				"request_id": r.ID.String(),
				"start_date": r.StartDate.Format(holiday.DateLayout),
				"end_date":   r.EndDate.Format(holiday.DateLayout),
			})
		}
	}

	req := &Request{
		ID:          uuid.New(),
		RequesterID: requester.ID,
		StartDate:   start,
		EndDate:     end,
		Type:        TypeNormal,
		Status:      StatusPending,
	}
	if err := scope.repo.Create(ctx, req); err != nil {
		l.Error("submit normal persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	created, err := s.insertLeaderAcceptances(ctx, scope, req)
	if err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("submit normal commit failed", zap.Error(err))
		return RequestResponse{}, err
	}
	l.Info("submit normal success",
		zap.String("request_id", req.ID.String()),
		zap.String("requester_id", requesterID),
		zap.Int("acceptances", len(created)),
	)

	return mapToResponse(*req, created), nil
}

// insertLeaderAcceptances opens one approval slot per distinct leader of the
// requester's teams.
func (s *service) insertLeaderAcceptances(ctx context.Context, scope txScope, req *Request) ([]acceptance.Acceptance, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	requesterID := req.RequesterID.String()

	mails, err := s.users.TeamLeaderMails(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	created := make([]acceptance.Acceptance, 0, len(mails))
	for _, mail := range mails {
		leader, err := s.users.GetByMail(ctx, mail)
		if err != nil {
			if errors.Is(err, usererrors.ErrUserNotFound) {
				l.Warn("team leader mail does not resolve to a user",
					zap.String("request_id", req.ID.String()),
					zap.String("mail", mail),
				)
				continue
			}
			return nil, err
		}

		a, err := scope.acceptances.Insert(ctx, req.ID.String(), leader.ID.String())
		if err != nil {
			return nil, err
		}
		created = append(created, *a)
	}
	return created, nil
}

func (s *service) SubmitOccasional(ctx context.Context, requesterID, startDate, occasion string) (RequestResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("submit occasional request",
		zap.String("requester_id", requesterID),
		zap.String("start_date", startDate),
		zap.String("occasion", occasion),
	)

	occ, ok := LookupOccasion(occasion)
	if !ok {
		return RequestResponse{}, requesterrors.ErrUnknownOccasion
	}

	start, err := parseDate(startDate)
	if err != nil {
		return RequestResponse{}, err
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return RequestResponse{}, err
	}

	end, err := s.holidays.WorkingDateOffset(ctx, start, occ.Days)
	if err != nil {
		return RequestResponse{}, err
	}

	now := s.now()
	if !validatePeriod(start, end, now) {
		l.Warn("submit occasional invalid period", zap.String("start_date", startDate))
		return RequestResponse{}, requesterrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("submit occasional begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()
	scope := s.bind(tx)

	kind := occ.Kind
	req := &Request{
		ID:           uuid.New(),
		RequesterID:  requester.ID,
		StartDate:    start,
		EndDate:      end,
		Type:         TypeOccasional,
		Occasion:     &kind,
		OccasionDays: occ.Days,
		OccasionInfo: occ.Info,
		Status:       StatusAccepted,
	}
	if err := scope.repo.Create(ctx, req); err != nil {
		l.Error("submit occasional persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	for _, ev := range occasionalEvents(*req, contextutil.GetRequestID(ctx), now) {
		if err := s.enqueue(ctx, scope, ev); err != nil {
			return RequestResponse{}, err
		}
	}

	if _, err := scope.history.PostRequest(ctx, history.Entry{
		UserID:    requesterID,
		RequestID: req.ID.String(),
		DeciderID: requesterID,
		Days:      decimal.Zero,
		Comment:   occ.Info,
	}); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("submit occasional commit failed", zap.Error(err))
		return RequestResponse{}, err
	}
	l.Info("submit occasional success",
		zap.String("request_id", req.ID.String()),
		zap.String("requester_id", requesterID),
		zap.String("occasion", occ.Kind),
	)

	return mapToResponse(*req, nil), nil
}

// Accept accepts every approval record on behalf of deciderID and moves the
// request to ACCEPTED even when some records could not be accepted.
func (s *service) Accept(ctx context.Context, requestID, deciderID string) (DecisionResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("accept request", zap.String("request_id", requestID), zap.String("decider_id", deciderID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("accept request begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()
	scope := s.bind(tx)

	req, err := s.loadRequest(ctx, scope.repo, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}
	if !canTransition(req.Status, StatusAccepted) {
		return DecisionResponse{}, requesterrors.ErrInvalidStatusTransition
	}

	list, err := scope.acceptances.ListByRequest(ctx, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}

	success := true
	var failed []FailedAcceptance

	if len(list) == 0 {
		ok, err := s.isValidRequestByRequest(ctx, scope, req)
		if err != nil {
			return DecisionResponse{}, err
		}
		if ok {
			if err := s.checkForActions(ctx, scope, req, deciderID); err != nil {
				return DecisionResponse{}, err
			}
		} else {
			success = false
		}
	}

	for _, a := range list {
		// Records a leader already accepted are done; only pending ones are applied.
		if a.IsAccepted() {
			continue
		}
		if req.IsNormal() {
			ok, err := s.isValidRequestByAcceptance(ctx, scope, a.ID.String())
			if err != nil {
				return DecisionResponse{}, err
			}
			if !ok {
				failed = append(failed, failedAcceptance(a, reasonNotEnoughDays))
				continue
			}
		}

		ok, err := scope.acceptances.Accept(ctx, a.ID.String(), deciderID)
		if err != nil {
			return DecisionResponse{}, err
		}
		if !ok {
			failed = append(failed, failedAcceptance(a, reasonNotPending))
			continue
		}

		if err := s.checkForActions(ctx, scope, req, deciderID); err != nil {
			return DecisionResponse{}, err
		}
	}

	return s.finishDecision(ctx, tx, scope, req, StatusAccepted, success, failed)
}

// Reject rejects every approval record and moves the request to REJECTED.
func (s *service) Reject(ctx context.Context, requestID, deciderID string) (DecisionResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("reject request", zap.String("request_id", requestID), zap.String("decider_id", deciderID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("reject request begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()
	scope := s.bind(tx)

	req, err := s.loadRequest(ctx, scope.repo, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}
	if !canTransition(req.Status, StatusRejected) {
		return DecisionResponse{}, requesterrors.ErrInvalidStatusTransition
	}

	list, err := scope.acceptances.ListByRequest(ctx, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}

	var failed []FailedAcceptance
	for _, a := range list {
		ok, err := scope.acceptances.Reject(ctx, a.ID.String(), deciderID)
		if err != nil {
			return DecisionResponse{}, err
		}
		if !ok {
			failed = append(failed, failedAcceptance(a, reasonAlreadyRejected))
		}
	}

	return s.finishDecision(ctx, tx, scope, req, StatusRejected, true, failed)
}

// Cancel withdraws a request. Ledger movements are reversed only when every
// record was rejected cleanly and the request had been fully decided, or
// when it is an occasional absence.
func (s *service) Cancel(ctx context.Context, requestID, actorID string) (DecisionResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("cancel request", zap.String("request_id", requestID), zap.String("actor_id", actorID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("cancel request begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()
	scope := s.bind(tx)

	req, err := s.loadRequest(ctx, scope.repo, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}

	requesterID := req.RequesterID.String()
	if actorID != requesterID {
		actor, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			return DecisionResponse{}, err
		}
		if !actor.IsAdmin() {
			l.Warn("cancel request by non owner",
				zap.String("request_id", requestID),
				zap.String("actor_id", actorID),
			)
			return DecisionResponse{}, requesterrors.ErrNotRequestOwner
		}
	}

	if !canTransition(req.Status, StatusCancelled) {
		return DecisionResponse{}, requesterrors.ErrInvalidStatusTransition
	}

	list, err := scope.acceptances.ListByRequest(ctx, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}
	acceptedBeforeCancel := req.Status == StatusAccepted && allDecided(list)

	if len(list) == 0 {
		a, err := scope.acceptances.InsertCancel(ctx, requestID, requesterID)
		if err != nil {
			return DecisionResponse{}, err
		}
		list = append(list, *a)
	}

	var failed []FailedAcceptance
	for _, a := range list {
		decider := requesterID
		if a.HasDecider() {
			decider = a.DeciderID.String()
		}
		ok, err := scope.acceptances.Reject(ctx, a.ID.String(), decider)
		if err != nil {
			return DecisionResponse{}, err
		}
		if !ok {
			failed = append(failed, failedAcceptance(a, reasonAlreadyRejected))
		}
	}

	if len(failed) == 0 {
		if comment, ok := cancellationReversal(*req, acceptedBeforeCancel); ok {
			if _, err := scope.history.ReverseRequest(ctx, requesterID, requestID, actorID, comment); err != nil {
				return DecisionResponse{}, err
			}
		}
	}

	return s.finishDecision(ctx, tx, scope, req, StatusCancelled, true, failed)
}

// finishDecision applies the aggregate status, commits and reports the
// records that could not be decided.
func (s *service) finishDecision(
	ctx context.Context,
	tx *sql.Tx,
	scope txScope,
	req *Request,
	status string,
	success bool,
	failed []FailedAcceptance,
) (DecisionResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	requestID := req.ID.String()

	if req.Status != status {
		if err := scope.repo.UpdateStatus(ctx, requestID, status); err != nil {
			l.Error("update request status failed", zap.String("request_id", requestID), zap.Error(err))
			return DecisionResponse{}, err
		}
		req.Status = status
	}

	list, err := scope.acceptances.ListByRequest(ctx, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("request decision commit failed", zap.String("request_id", requestID), zap.Error(err))
		return DecisionResponse{}, err
	}

	success = success && len(failed) == 0
	if success {
		l.Info("request decision applied", zap.String("request_id", requestID), zap.String("status", status))
	} else {
		l.Warn("request decision partially applied",
			zap.String("request_id", requestID),
			zap.String("status", status),
			zap.Int("failed", len(failed)),
		)
	}

	return DecisionResponse{
		Request:           mapToResponse(*req, list),
		Success:           success,
		FailedAcceptances: failed,
	}, nil
}

// DecideAcceptance applies one leader's decision. A rejection by any leader
// rejects the whole request.
func (s *service) DecideAcceptance(ctx context.Context, acceptanceID, deciderID string, accept bool) (acceptance.AcceptanceResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("decide acceptance",
		zap.String("acceptance_id", acceptanceID),
		zap.String("decider_id", deciderID),
		zap.Bool("accept", accept),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("decide acceptance begin tx failed", zap.Error(err))
		return acceptance.AcceptanceResponse{}, err
	}
	defer tx.Rollback()
	scope := s.bind(tx)

	a, err := scope.acceptances.Get(ctx, acceptanceID)
	if err != nil {
		return acceptance.AcceptanceResponse{}, err
	}

	if a.LeaderID.String() != deciderID {
		decider, err := s.users.GetByID(ctx, deciderID)
		if err != nil {
			return acceptance.AcceptanceResponse{}, err
		}
		if !decider.IsAdmin() {
			l.Warn("acceptance decided by foreign leader",
				zap.String("acceptance_id", acceptanceID),
				zap.String("decider_id", deciderID),
			)
			return acceptance.AcceptanceResponse{}, acceptanceerrors.ErrNotAcceptanceLeader
		}
	}

	req, err := s.loadRequest(ctx, scope.repo, a.RequestID.String())
	if err != nil {
		return acceptance.AcceptanceResponse{}, err
	}
	if req.Status != StatusPending {
		return acceptance.AcceptanceResponse{}, requesterrors.ErrInvalidStatusTransition
	}

	if accept {
		if req.IsNormal() {
			ok, err := s.isValidRequestByAcceptance(ctx, scope, acceptanceID)
			if err != nil {
				return acceptance.AcceptanceResponse{}, err
			}
			if !ok {
				return acceptance.AcceptanceResponse{}, requesterrors.ErrNotEnoughDays
			}
		}

		ok, err := scope.acceptances.Accept(ctx, acceptanceID, deciderID)
		if err != nil {
			return acceptance.AcceptanceResponse{}, err
		}
		if !ok {
			return acceptance.AcceptanceResponse{}, acceptanceerrors.ErrAcceptanceAlreadyDecided
		}

		if err := s.checkForActions(ctx, scope, req, deciderID); err != nil {
			return acceptance.AcceptanceResponse{}, err
		}
	} else {
		ok, err := scope.acceptances.Reject(ctx, acceptanceID, deciderID)
		if err != nil {
			return acceptance.AcceptanceResponse{}, err
		}
		if !ok {
			return acceptance.AcceptanceResponse{}, acceptanceerrors.ErrAcceptanceAlreadyDecided
		}

		if err := scope.repo.UpdateStatus(ctx, req.ID.String(), StatusRejected); err != nil {
			l.Error("reject request status update failed", zap.Error(err))
			return acceptance.AcceptanceResponse{}, err
		}
	}

	decided, err := scope.acceptances.Get(ctx, acceptanceID)
	if err != nil {
		return acceptance.AcceptanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("decide acceptance commit failed", zap.Error(err))
		return acceptance.AcceptanceResponse{}, err
	}
	l.Info("acceptance decision applied",
		zap.String("acceptance_id", acceptanceID),
		zap.String("request_id", req.ID.String()),
		zap.String("status", decided.Status),
	)

	return acceptance.MapToResponse(*decided), nil
}

// checkForActions accepts the request once every approval record is
// accepted, announces it and deducts the leave from the requester's pool.
func (s *service) checkForActions(ctx context.Context, scope txScope, req *Request, lastApproverID string) error {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if req.Status == StatusAccepted {
		return nil
	}

	list, err := scope.acceptances.ListByRequest(ctx, req.ID.String())
	if err != nil {
		return err
	}
	if !allAccepted(list) {
		return nil
	}

	if err := scope.repo.UpdateStatus(ctx, req.ID.String(), StatusAccepted); err != nil {
		l.Error("accept request status update failed", zap.Error(err))
		return err
	}
	req.Status = StatusAccepted

	if err := s.enqueue(ctx, scope, acceptedEvent(*req, contextutil.GetRequestID(ctx), s.now())); err != nil {
		return err
	}

	if !req.IsNormal() {
		return nil
	}

	requester, err := s.users.GetByID(ctx, req.RequesterID.String())
	if err != nil {
		return err
	}
	required, err := s.requiredFor(ctx, requester, req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	_, err = scope.history.PostRequest(ctx, history.Entry{
		UserID:    req.RequesterID.String(),
		RequestID: req.ID.String(),
		DeciderID: lastApproverID,
		Days:      required.Neg(),
	})
	return err
}

// isValidRequestByAcceptance reports whether the requester behind the
// acceptance can still cover the request from the current pool.
func (s *service) isValidRequestByAcceptance(ctx context.Context, scope txScope, acceptanceID string) (bool, error) {
	a, err := scope.acceptances.Get(ctx, acceptanceID)
	if err != nil {
		return false, err
	}
	req, err := s.loadRequest(ctx, scope.repo, a.RequestID.String())
	if err != nil {
		return false, err
	}
	return s.isValidRequestByRequest(ctx, scope, req)
}

func (s *service) isValidRequestByRequest(ctx context.Context, scope txScope, req *Request) (bool, error) {
	if !req.IsNormal() {
		return true, nil
	}

	requester, err := s.users.GetByID(ctx, req.RequesterID.String())
	if err != nil {
		return false, err
	}
	required, err := s.requiredFor(ctx, requester, req.StartDate, req.EndDate)
	if err != nil {
		return false, err
	}
	remaining, err := scope.history.RemainingBalance(ctx, requester.ID.String(), nil)
	if err != nil {
		return false, err
	}
	return remaining.GreaterThanOrEqual(required), nil
}

func (s *service) requiredFor(ctx context.Context, requester *user.User, start, end time.Time) (decimal.Decimal, error) {
	days, err := s.holidays.WorkingDays(ctx, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return requiredDays(days, requester.FullTimeShare()), nil
}

func (s *service) enqueue(ctx context.Context, scope txScope, ev events.RequestEvent) error {
	l := contextutil.ScopedLogger(ctx, s.logger)
	event, err := kafka.NewOutboxEvent(
		events.RequestLifecycleTopic,
		events.RequestAggregate,
		ev.RequestID,
		ev.EventType,
		ev.CorrelationID,
		ev,
	)
	if err != nil {
		return err
	}

	if err := scope.outbox.Create(ctx, event); err != nil {
		l.Error("enqueue request event failed",
			zap.String("request_id", ev.RequestID),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) loadRequest(ctx context.Context, repo Repository, id string) (*Request, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return nil, requesterrors.ErrInvalidRequestID
	}

	req, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		l.Error("load request failed", zap.String("request_id", id), zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (s *service) ListPendingForLeader(ctx context.Context, leaderID string) ([]acceptance.PendingAcceptanceResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	pending, err := s.acceptances.ListPendingByLeader(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []acceptance.PendingAcceptanceResponse{}, nil
	}

	ids := make([]string, len(pending))
	for i, a := range pending {
		ids[i] = a.RequestID.String()
	}
	requests, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		l.Error("list pending requests failed", zap.String("leader_id", leaderID), zap.Error(err))
		return nil, err
	}
	byID := make(map[uuid.UUID]Request, len(requests))
	for _, r := range requests {
		byID[r.ID] = r
	}

	names := make(map[uuid.UUID]string)
	res := make([]acceptance.PendingAcceptanceResponse, 0, len(pending))
	for _, a := range pending {
		r, ok := byID[a.RequestID]
		if !ok {
			continue
		}

		name, known := names[r.RequesterID]
		if !known {
			if u, err := s.users.GetByID(ctx, r.RequesterID.String()); err == nil {
				name = u.Name
			}
			names[r.RequesterID] = name
		}

		res = append(res, acceptance.PendingAcceptanceResponse{
			AcceptanceResponse: acceptance.MapToResponse(a),
			RequesterID:        r.RequesterID.String(),
			RequesterName:      name,
			StartDate:          r.StartDate.Format(holiday.DateLayout),
			EndDate:            r.EndDate.Format(holiday.DateLayout),
			RequestStatus:      r.Status,
		})
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RequestResponse, error) {
	req, err := s.loadRequest(ctx, s.repo, id)
	if err != nil {
		return RequestResponse{}, err
	}

	list, err := s.acceptances.ListByRequest(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	return mapToResponse(*req, list), nil
}

func (s *service) GetByRequester(ctx context.Context, requesterID string) ([]RequestResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	list, err := s.repo.FindByRequester(ctx, requesterID)
	if err != nil {
		l.Error("list requests by requester failed", zap.String("requester_id", requesterID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) GetAll(ctx context.Context) ([]RequestResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		l.Error("list requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(list), nil
}

// GetByRequesterSince returns every request of the requester when at least
// one of them changed after since, otherwise nothing.
func (s *service) GetByRequesterSince(ctx context.Context, requesterID string, since time.Time) ([]RequestResponse, error) {
	changed, err := s.repo.ExistsModifiedSince(ctx, requesterID, since)
	if err != nil {
		return nil, err
	}
	if !changed {
		return []RequestResponse{}, nil
	}
	return s.GetByRequester(ctx, requesterID)
}

func (s *service) GetAllSince(ctx context.Context, since time.Time) ([]RequestResponse, error) {
	changed, err := s.repo.ExistsModifiedSince(ctx, "", since)
	if err != nil {
		return nil, err
	}
	if !changed {
		return []RequestResponse{}, nil
	}
	return s.GetAll(ctx)
}

func (s *service) Occasions() []OccasionResponse {
	list := Occasions()
	res := make([]OccasionResponse, len(list))
	for i, o := range list {
		res[i] = OccasionResponse{Kind: o.Kind, Days: o.Days, Info: o.Info}
	}
	return res
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(holiday.DateLayout, value)
	if err != nil {
		return time.Time{}, requesterrors.ErrInvalidDate
	}
	return d, nil
}

func failedAcceptance(a acceptance.Acceptance, reason string) FailedAcceptance {
	return FailedAcceptance{
		AcceptanceID: a.ID.String(),
		LeaderID:     a.LeaderID.String(),
		Status:       a.Status,
		Reason:       reason,
	}
}
