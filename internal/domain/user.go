package domain

import (
	"errors"
	"time"
)

// 业务错误（transport 层统一映射 HTTP 状态码）
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEntryNotFound      = errors.New("journal entry not found")
)

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:user" json:"role"` // "user"/"admin"
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	// FindByEmail 未命中返回 (nil, nil)
	FindByEmail(email string) (*User, error)
}
