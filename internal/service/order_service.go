package service

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/cache"
	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// totalTolerance is the largest accepted gap between the claimed and the
// server-computed order total.
var totalTolerance = decimal.RequireFromString("0.01")

// CartItem is the priced preview returned when adding a product to a cart.
// The cart itself is client-side state; nothing is mutated server-side.
type CartItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderService validates and places orders against the catalog.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem, claimedTotal decimal.Decimal) (*model.Order, error)
	QuoteItem(ctx context.Context, productID int64, quantity int) (*CartItem, error)
	ListOrders(ctx context.Context, userID int64) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID, userID int64) (*model.Order, error)
}

type orderService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	cache    *cache.Client
}

// NewOrderService creates a new order service.
func NewOrderService(products repository.ProductRepository, orders repository.OrderRepository, cache *cache.Client) OrderService {
	return &orderService{
		products: products,
		orders:   orders,
		cache:    cache,
	}
}

// PlaceOrder validates every line item against current stock, recomputes the
// authoritative total, and only then decrements stock and records the order.
// Validation and decrement run inside one catalog transaction: a failure on
// any item leaves every product's stock untouched, and concurrent orders
// cannot both validate against the same pre-decrement count.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem, claimedTotal decimal.Decimal) (*model.Order, error) {
	if len(items) == 0 {
		return nil, errors.ErrEmptyOrder
	}

	var order *model.Order
	err := s.products.WithTransaction(ctx, func(ctx context.Context, products repository.ProductRepository) error {
		total := decimal.Zero
		for _, item := range items {
			product, err := products.FindByID(ctx, item.ProductID)
			if err != nil {
				return &errors.ProductNotFoundError{ID: item.ProductID}
			}
			if product.Stock < item.Quantity {
				return &errors.InsufficientStockError{
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   item.Quantity,
				}
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		if total.Sub(claimedTotal).Abs().GreaterThan(totalTolerance) {
			return errors.ErrTotalMismatch
		}

		// All items validated; commit the decrements.
		for _, item := range items {
			if err := products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		order = &model.Order{
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			Status:      model.OrderStatusConfirmed,
		}
		return s.orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx, items)
	return order, nil
}

// QuoteItem prices a single line item without mutating any state.
func (s *orderService) QuoteItem(ctx context.Context, productID int64, quantity int) (*CartItem, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.ErrProductNotFound
	}
	if product.Stock < quantity {
		return nil, errors.ErrInsufficientStock
	}
	return &CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}, nil
}

// ListOrders returns the caller's orders in insertion order.
func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// GetOrder returns an order only when both id and owner match.
func (s *orderService) GetOrder(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return s.orders.FindByIDAndUser(ctx, orderID, userID)
}

func (s *orderService) invalidateCatalog(ctx context.Context, items []model.OrderItem) {
	keys := make([]string, 0, len(items)+1)
	keys = append(keys, catalogCacheKey)
	for _, item := range items {
		keys = append(keys, productCacheKey(item.ProductID))
	}
	_ = s.cache.Delete(ctx, keys...)
}
