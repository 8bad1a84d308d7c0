package domain

// Projections exposed upward; derived by copying persisted fields.

type UserDTO struct {
	UserID   uint64 `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

type OrderDTO struct {
	OrderID     uint64  `json:"orderId"`
	UserID      uint64  `json:"userId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// UserOrderResponse is the aggregate view: one user plus all orders
// attributed to it, in the order the order service returned them.
// Rebuilt on every request, never persisted.
type UserOrderResponse struct {
	User   UserDTO    `json:"user"`
	Orders []OrderDTO `json:"orders"`
}
