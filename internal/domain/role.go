package domain

import "context"

type Role struct {
	UID  string `gorm:"primaryKey;size:36" json:"uid"`
	Name string `gorm:"uniqueIndex;size:64" json:"name"`
}

func (Role) TableName() string { return "roles" }

type RoleRepository interface {
	Create(ctx context.Context, r *Role) error
	FindByUID(ctx context.Context, uid string) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]Role, error)
	Count(ctx context.Context) (int64, error)
}
