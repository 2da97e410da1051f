package repository

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// ProductRepository defines catalog store operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	DecrementStock(ctx context.Context, id int64, quantity int) error
	// WithTransaction runs fn as a single critical section against the
	// catalog. Stock checked inside fn cannot change before fn commits its
	// decrements, which is what keeps concurrent orders from overselling.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error
}

type productRepository struct {
	mu       sync.RWMutex
	nextID   int64
	products []*model.Product
}

// NewProductRepository builds an in-memory catalog store.
func NewProductRepository() ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(product)
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(), nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByID(id)
}

func (r *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.decrementStock(id, quantity)
}

func (r *productRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx, &productTx{r: r})
}

// unlocked variants, caller must hold the appropriate lock

func (r *productRepository) create(product *model.Product) error {
	r.nextID++
	product.ID = r.nextID
	if product.Image == "" {
		product.Image = fmt.Sprintf("product%d.jpg", product.ID)
	}
	stored := *product
	r.products = append(r.products, &stored)
	return nil
}

func (r *productRepository) list() []model.Product {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out
}

func (r *productRepository) findByID(id int64) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, errors.ErrProductNotFound
}

func (r *productRepository) decrementStock(id int64, quantity int) error {
	for _, p := range r.products {
		if p.ID != id {
			continue
		}
		if p.Stock < quantity {
			return &errors.InsufficientStockError{
				ProductName: p.Name,
				Available:   p.Stock,
				Requested:   quantity,
			}
		}
		p.Stock -= quantity
		return nil
	}
	return errors.ErrProductNotFound
}

// productTx is the view handed to WithTransaction callbacks. The store's
// write lock is already held, so it must not lock again.
type productTx struct {
	r *productRepository
}

func (t *productTx) Create(ctx context.Context, product *model.Product) error {
	return t.r.create(product)
}

func (t *productTx) List(ctx context.Context) ([]model.Product, error) {
	return t.r.list(), nil
}

func (t *productTx) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	return t.r.findByID(id)
}

func (t *productTx) DecrementStock(ctx context.Context, id int64, quantity int) error {
	return t.r.decrementStock(id, quantity)
}

func (t *productTx) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error {
	return fn(ctx, t)
}
