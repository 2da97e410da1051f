package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	_ "storefront/docs" // swagger docs

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
)

// @title Storefront API
// @version 1.0
// @description Minimal e-commerce backend with JWT authentication, product catalog, cart pricing, and order placement.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	// Money serializes as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()
	e.HideBanner = true

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize in-memory stores
	productRepo := repository.NewProductRepository()
	userRepo := repository.NewUserRepository()
	orderRepo := repository.NewOrderRepository()

	if err := repository.SeedProducts(context.Background(), productRepo); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	catalogService := service.NewCatalogService(productRepo, cacheClient)
	orderService := service.NewOrderService(productRepo, orderRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	cartHandler := handler.NewCartHandler(orderService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler()

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		productHandler,
		cartHandler,
		orderHandler,
		userHandler,
		healthHandler,
	)

	log.Printf("API base URL: http://localhost:%s/api", cfg.ServerPort)
	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
