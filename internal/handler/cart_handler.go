package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

// CartHandler handles the cart pricing preview endpoint.
type CartHandler struct {
	orderService service.OrderService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(orderService service.OrderService) *CartHandler {
	return &CartHandler{orderService: orderService}
}

// AddToCartRequest represents a cart add request.
type AddToCartRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

// Add godoc
// @Summary Price a product for the cart
// @Description Validates availability and returns the priced line item. The cart is client-side; no server state changes.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddToCartRequest true "Cart item"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/add [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return writeValidationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, err.Error())
	}

	item, err := h.orderService.QuoteItem(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Product added to cart",
		"item":    item,
	})
}
