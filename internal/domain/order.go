package domain

import (
	"context"
	"time"
)

// Order references a user by id only; cross-service consistency is not
// enforced at this layer (the user may live in another service's store).
type Order struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:order_id" json:"orderId"`
	UserID      uint64    `gorm:"index;not null;column:user_id" json:"userId"`
	ProductName string    `gorm:"size:191;not null" json:"productName"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint64) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindByUserID(ctx context.Context, userID uint64) ([]Order, error)
	Save(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint64) error
}
