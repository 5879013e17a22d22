package domain

import (
	"context"
	"errors"
)

// ErrDuplicateKey 唯一索引冲突（email 并发注册兜底）
var ErrDuplicateKey = errors.New("duplicate key")

type User struct {
	UID          string   `gorm:"primaryKey;size:36" json:"uid"`
	FirstName    string   `gorm:"size:64" json:"firstName"`
	LastName     string   `gorm:"size:64" json:"lastName"`
	Email        string   `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string   `gorm:"size:100" json:"-"`
	Roles        []string `gorm:"serializer:json;type:text" json:"roles"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByUID(ctx context.Context, uid string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	// Delete 硬删除；返回 false 表示目标不存在
	Delete(ctx context.Context, uid string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
