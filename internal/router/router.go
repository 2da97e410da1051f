package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", healthHandler.Check)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	// Secured routes (require a bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		// A missing token is 401, an invalid or expired one is 400.
		ErrorHandler: func(c echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "Access denied. No token provided.",
					Code:  "NO_TOKEN",
				})
			}
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "Invalid token.",
				Code:  "INVALID_TOKEN",
			})
		},
	}))

	secured.POST("/cart/add", cartHandler.Add)
	secured.POST("/orders", orderHandler.Create)
	secured.GET("/orders", orderHandler.List)
	secured.GET("/orders/:id", orderHandler.Get)
	secured.PUT("/users/profile", userHandler.UpdateProfile)
	secured.POST("/admin/products", productHandler.Create)

	// Unknown API paths get a JSON 404 instead of echo's default body.
	api.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "API endpoint not found",
			Code:  "NOT_FOUND",
		})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
