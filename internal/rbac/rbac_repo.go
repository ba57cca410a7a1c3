package rbac

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRole(userID string) (string, error)
	GetRolePermissions() ([]RolePermission, error)
	GetPermissionsByRole(role string) ([]RolePermission, error)
	EnsurePermissions(perms []RolePermission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetUserRole returns the role of an active user, or "" when the user is
// unknown or disabled.
func (r *repository) GetUserRole(userID string) (string, error) {
	var role string
	err := r.db.
		Table("users").
		Select("role").
		Where("id = ? AND is_active = ? AND deleted_at IS NULL", userID, true).
		Limit(1).
		Row().
		Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return role, err
}

func (r *repository) GetRolePermissions() ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) GetPermissionsByRole(role string) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.
		Where("role = ?", role).
		Order("resource, action").
		Find(&result).Error
	return result, err
}

// EnsurePermissions inserts the missing grants and leaves existing ones
// untouched.
func (r *repository) EnsurePermissions(perms []RolePermission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&perms).Error
}
