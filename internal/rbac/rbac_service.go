package rbac

import (
	"sort"
	"sync"

	"go-leave/internal/domain"
	rbacerrors "go-leave/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	RolePermissions(role string) (domain.RolePermissionsResponse, error)
	SeedDefaults() error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) SeedDefaults() error {
	if err := s.repo.EnsurePermissions(DefaultPermissions); err != nil {
		s.logger.Error("seed rbac permissions failed", zap.Error(err))
		return err
	}
	return nil
}

// loadPolicyUnlocked rebuilds the enforcer from the stored grants and the
// fixed role hierarchy.
func (s *service) loadPolicyUnlocked() error {
	s.enforcer.ClearPolicy()

	for role, parent := range roleParents {
		if _, err := s.enforcer.AddGroupingPolicy(role, parent); err != nil {
			return err
		}
	}

	perms, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}
	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("role_permissions", len(perms)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadPolicyUnlocked(); err != nil {
		s.logger.Error("rbac load policy failed", zap.Error(err))
		return false, err
	}

	role, err := s.repo.GetUserRole(req.UserID)
	if err != nil {
		s.logger.Error("rbac user role lookup failed", zap.String("user_id", req.UserID), zap.Error(err))
		return false, err
	}
	if role == "" {
		s.logger.Warn("rbac enforce for unknown user", zap.String("user_id", req.UserID))
		return false, nil
	}
	if _, err := s.enforcer.AddGroupingPolicy(req.UserID, role); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// RolePermissions lists the grants of a role including the inherited ones.
func (s *service) RolePermissions(role string) (domain.RolePermissionsResponse, error) {
	if _, ok := roleParents[role]; !ok && role != "WORKER" {
		return domain.RolePermissionsResponse{}, rbacerrors.ErrUnknownRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadPolicyUnlocked(); err != nil {
		s.logger.Error("rbac load policy failed", zap.Error(err))
		return domain.RolePermissionsResponse{}, err
	}

	implicit, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return domain.RolePermissionsResponse{}, err
	}

	perms := make([]domain.PermissionResponse, 0, len(implicit))
	for _, p := range implicit {
		if len(p) < 3 {
			continue
		}
		perms = append(perms, domain.PermissionResponse{Resource: p[1], Action: p[2]})
	}
	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})

	return domain.RolePermissionsResponse{Role: role, Permissions: perms}, nil
}
