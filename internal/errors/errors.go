package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUserAlreadyExists is returned when registering with a taken email.
	ErrUserAlreadyExists = errors.New("User already exists")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("Product not found")
	// ErrOrderNotFound is returned when an order is missing or not owned by the caller.
	ErrOrderNotFound = errors.New("Order not found")
	// ErrEmptyOrder is returned when an order request carries no line items.
	ErrEmptyOrder = errors.New("Order must contain at least one item")
	// ErrTotalMismatch is returned when the claimed total disagrees with the
	// server-side computed total by more than the tolerance.
	ErrTotalMismatch = errors.New("Total amount mismatch")
	// ErrInsufficientStock is returned by the cart pricing preview when the
	// requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("Insufficient stock")
)

// ProductNotFoundError is returned during order validation, naming the
// missing product id.
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %d not found", e.ID)
}

// InsufficientStockError is returned during order validation, naming the
// product and the available versus requested counts.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate email maps to
// 400, not 409, matching the documented API surface.
func MapErrorToHTTP(err error) *HTTPError {
	var notFound *ProductNotFoundError
	if errors.As(err, &notFound) {
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	}
	var stock *InsufficientStockError
	if errors.As(err, &stock) {
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_STOCK")
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrEmptyOrder):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_ORDER")
	case errors.Is(err, ErrTotalMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOTAL_MISMATCH")
	case errors.Is(err, ErrInsufficientStock):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_STOCK")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
