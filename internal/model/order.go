package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	// OrderStatusConfirmed is the only status an order takes on in this design.
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderItem is a single line item within an order.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Order represents a confirmed purchase.
type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}
