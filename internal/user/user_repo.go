package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindFirstByMail(ctx context.Context, mail string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
	FindTeamLeaderMails(ctx context.Context, userID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindFirstByMail(ctx context.Context, mail string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("mail = ?", mail).
		Order("created_at ASC").
		First(&u).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByRole(ctx context.Context, role string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindTeamLeaderMails(ctx context.Context, userID string) ([]string, error) {
	var mails []string
	err := r.db.WithContext(ctx).
		Table("team_members").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Joins("JOIN users AS leaders ON leaders.id = teams.leader_id").
		Where("team_members.user_id = ?", userID).
		Where("leaders.deleted_at IS NULL").
		Distinct().
		Order("leaders.mail").
		Pluck("leaders.mail", &mails).Error
	return mails, err
}
