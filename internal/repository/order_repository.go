package repository

import (
	"context"
	"sync"
	"time"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// OrderRepository defines order store operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	FindByIDAndUser(ctx context.Context, id, userID int64) (*model.Order, error)
}

type orderRepository struct {
	mu     sync.RWMutex
	nextID int64
	orders []*model.Order
}

// NewOrderRepository builds an in-memory order store.
func NewOrderRepository() OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = r.nextID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	r.orders = append(r.orders, &stored)
	return nil
}

// ListByUser returns the caller's orders in insertion order.
func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

// FindByIDAndUser returns the order only when both id and owner match.
func (r *orderRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id && o.UserID == userID {
			found := copyOrder(o)
			return &found, nil
		}
	}
	return nil, errors.ErrOrderNotFound
}

func copyOrder(o *model.Order) model.Order {
	out := *o
	out.Items = append([]model.OrderItem(nil), o.Items...)
	return out
}
