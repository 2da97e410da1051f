package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// SeedProducts loads the initial catalog into an empty product store.
// IDs are assigned sequentially starting at 1.
func SeedProducts(ctx context.Context, repo ProductRepository) error {
	seed := []model.Product{
		{
			Name:        "Smartphone Pro",
			Price:       decimal.RequireFromString("699.99"),
			Description: "Latest smartphone with advanced features",
			Category:    "Electronics",
			Stock:       50,
			Image:       "smartphone.jpg",
		},
		{
			Name:        "Laptop Ultra",
			Price:       decimal.RequireFromString("1299.99"),
			Description: "High-performance laptop for professionals",
			Category:    "Electronics",
			Stock:       30,
			Image:       "laptop.jpg",
		},
		{
			Name:        "Wireless Headphones",
			Price:       decimal.RequireFromString("199.99"),
			Description: "Premium noise-canceling headphones",
			Category:    "Audio",
			Stock:       100,
			Image:       "headphones.jpg",
		},
		{
			Name:        "Smart Watch",
			Price:       decimal.RequireFromString("299.99"),
			Description: "Fitness tracking smartwatch",
			Category:    "Wearables",
			Stock:       75,
			Image:       "smartwatch.jpg",
		},
		{
			Name:        "Gaming Console",
			Price:       decimal.RequireFromString("499.99"),
			Description: "Next-gen gaming console",
			Category:    "Gaming",
			Stock:       25,
			Image:       "console.jpg",
		},
		{
			Name:        "4K Monitor",
			Price:       decimal.RequireFromString("399.99"),
			Description: "Ultra-high definition monitor",
			Category:    "Electronics",
			Stock:       40,
			Image:       "monitor.jpg",
		},
	}

	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
