package dao

import (
	"Scoops/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByLogin expects an already normalised login.
func (u *Users) FindByLogin(ctx context.Context, login string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "login = ?", login)
}

func (u *Users) IsLoginExist(ctx context.Context, login string) (bool, error) {
	return u.Repo.IsExist(ctx, "login = ?", login)
}

func (u *Users) UpdateRole(ctx context.Context, id int64, role models.Role) (int64, error) {
	return u.Repo.UpdateById(ctx, id, map[string]any{"role": role})
}
