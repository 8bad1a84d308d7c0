package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:user_id" json:"userId"`
	Name      string    `gorm:"size:64;not null;column:user_name" json:"userName"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint64) error
}
