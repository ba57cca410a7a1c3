package user

import (
	"context"
	"errors"
	"strings"

	"go-leave/internal/shared/contextutil"
	usererrors "go-leave/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByMail(ctx context.Context, mail string) (*User, error)
	TeamLeaderMails(ctx context.Context, userID string) ([]string, error)
	ListAdmins(ctx context.Context) ([]User, error)
	GetProfile(ctx context.Context, id string) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		l.Error("failed to load user", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// GetByMail resolves a mail address to the first user registered with it.
func (s *service) GetByMail(ctx context.Context, mail string) (*User, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	mail = strings.TrimSpace(mail)
	if mail == "" {
		return nil, usererrors.ErrUserNotFound
	}

	u, err := s.repo.FindFirstByMail(ctx, mail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		l.Error("failed to load user by mail", zap.String("mail", mail), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// TeamLeaderMails returns the distinct mail addresses of the leaders of
// every team the user belongs to, in a stable order.
func (s *service) TeamLeaderMails(ctx context.Context, userID string) ([]string, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	mails, err := s.repo.FindTeamLeaderMails(ctx, userID)
	if err != nil {
		l.Error("failed to load team leaders", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	seen := make(map[string]struct{}, len(mails))
	distinct := make([]string, 0, len(mails))
	for _, m := range mails {
		key := strings.ToLower(strings.TrimSpace(m))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, m)
	}
	return distinct, nil
}

func (s *service) ListAdmins(ctx context.Context) ([]User, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	admins, err := s.repo.FindByRole(ctx, RoleAdmin)
	if err != nil {
		l.Error("failed to list admins", zap.Error(err))
		return nil, err
	}
	return admins, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		l.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res, nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:   u.ID.String(),
		Mail: u.Mail,
		Name: u.Name,
		Role: u.Role,
	}
}
