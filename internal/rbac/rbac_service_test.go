package rbac_test

import (
	"errors"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/rbac"
	rbacerrors "go-leave/internal/rbac/errors"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/rbac/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (rbac.Service, *mock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	enforcer, err := infra.NewEnforcer("")
	require.NoError(t, err)

	repo.EXPECT().GetRolePermissions().Return(rbac.DefaultPermissions, nil).AnyTimes()
	return rbac.NewService(repo, enforcer), repo
}

func TestService_Enforce(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetUserRole("worker-1").Return("WORKER", nil).AnyTimes()
	repo.EXPECT().GetUserRole("leader-1").Return("LEADER", nil).AnyTimes()
	repo.EXPECT().GetUserRole("admin-1").Return("ADMIN", nil).AnyTimes()
	repo.EXPECT().GetUserRole("ghost").Return("", nil).AnyTimes()

	tests := []struct {
		user, resource, action string
		want                   bool
	}{
		{"worker-1", "request", "create", true},
		{"worker-1", "acceptance", "decide", false},
		{"worker-1", "holiday", "create", false},
		{"leader-1", "request", "create", true},
		{"leader-1", "acceptance", "decide", true},
		{"leader-1", "request", "decide", false},
		{"admin-1", "acceptance", "read", true},
		{"admin-1", "request", "decide", true},
		{"admin-1", "history", "adjust", true},
		{"admin-1", "payroll", "read", false},
		{"ghost", "request", "create", false},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(domain.EnforceRequest{UserID: tt.user, Resource: tt.resource, Action: tt.action})
		require.NoError(t, err)
		assert.Equal(t, tt.want, allowed, "%s %s:%s", tt.user, tt.resource, tt.action)
	}
}

func TestService_Enforce_RepositoryError(t *testing.T) {
	svc, repo := newService(t)
	boom := errors.New("db down")
	repo.EXPECT().GetUserRole("worker-1").Return("", boom)

	_, err := svc.Enforce(domain.EnforceRequest{UserID: "worker-1", Resource: "request", Action: "create"})
	assert.ErrorIs(t, err, boom)
}

func TestService_RolePermissions(t *testing.T) {
	svc, _ := newService(t)

	leader, err := svc.RolePermissions("LEADER")
	require.NoError(t, err)
	assert.Equal(t, "LEADER", leader.Role)
	assert.ElementsMatch(t, []domain.PermissionResponse{
		{Resource: "acceptance", Action: "decide"},
		{Resource: "acceptance", Action: "read"},
		{Resource: "history", Action: "read"},
		{Resource: "request", Action: "create"},
	}, leader.Permissions)

	worker, err := svc.RolePermissions("WORKER")
	require.NoError(t, err)
	assert.Len(t, worker.Permissions, 2)

	admin, err := svc.RolePermissions("ADMIN")
	require.NoError(t, err)
	assert.Len(t, admin.Permissions, len(rbac.DefaultPermissions))

	_, err = svc.RolePermissions("OWNER")
	assert.ErrorIs(t, err, rbacerrors.ErrUnknownRole)
}

func TestService_SeedDefaults(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().EnsurePermissions(rbac.DefaultPermissions).Return(nil)

	assert.NoError(t, svc.SeedDefaults())
}
