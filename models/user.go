package models

import (
	"strings"
	"time"
)

// Role is the closed set of roles carried in tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole normalises a role name; empty input yields RoleUser.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case "", RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Users maps the tb_users table.
type Users struct {
	Id        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Login     string    `gorm:"size:150;not null;uniqueIndex:idx_users_login;column:login" json:"login"`
	Name      string    `gorm:"size:150;column:full_name" json:"name"`
	Phone     string    `gorm:"size:30;column:phone" json:"phone"`
	Address   string    `gorm:"size:255;column:address" json:"address"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	Role      Role      `gorm:"size:20;not null;default:USER;column:role" json:"role"`
	Enabled   bool      `gorm:"not null;default:false;column:enabled" json:"enabled"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Users) TableName() string {
	return "tb_users"
}

// NormalizeLogin is applied on every write and lookup of a login.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}
