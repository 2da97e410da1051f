package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	catalogCacheKey = "products:all"
	catalogCacheTTL = 30 * time.Second
	productCacheTTL = 5 * time.Minute
)

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// CatalogService exposes catalog read operations and the admin creation path.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
}

type catalogService struct {
	products repository.ProductRepository
	cache    *cache.Client
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(products repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{products: products, cache: cache}
}

// ListProducts returns the full catalog, read through the cache.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
	}
	return products, nil
}

// GetProduct returns a single product, read through the cache.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	key := productCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, key, payload, productCacheTTL)
	}
	return product, nil
}

// CreateProduct appends a product to the catalog and invalidates the list cache.
func (s *catalogService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return product, nil
}
