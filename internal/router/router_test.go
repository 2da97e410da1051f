package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newTestServer wires the full application against fresh in-memory stores.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	cacheClient := (*cache.Client)(nil)

	productRepo := repository.NewProductRepository()
	userRepo := repository.NewUserRepository()
	orderRepo := repository.NewOrderRepository()
	assert.NoError(t, repository.SeedProducts(context.Background(), productRepo))

	jwtService := auth.NewJWTService("test-secret")

	authService := service.NewAuthService(userRepo, jwtService)
	catalogService := service.NewCatalogService(productRepo, cacheClient)
	orderService := service.NewOrderService(productRepo, orderRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	Register(
		e,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewProductHandler(catalogService),
		handler.NewCartHandler(orderService),
		handler.NewOrderHandler(orderService),
		handler.NewUserHandler(userService),
		handler.NewHealthHandler(),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, e *echo.Echo, name, email string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":"password123"}`, name, email))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Server is running", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestRegisterAndLogin(t *testing.T) {
	e := newTestServer(t)

	registerUser(t, e, "Alice", "alice@example.com")

	// duplicate email is a 400, not a 409
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")

	// short password rejected
	rec = doJSON(e, http.MethodPost, "/api/auth/register", "",
		`{"name":"Bob","email":"bob@example.com","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestListAndGetProducts(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Success  bool            `json:"success"`
		Products []model.Product `json:"products"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.True(t, listResp.Success)
	assert.Len(t, listResp.Products, 6)

	rec = doJSON(e, http.MethodGet, "/api/products/1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Smartphone Pro")

	rec = doJSON(e, http.MethodGet, "/api/products/99", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestAuthStatusCodes(t *testing.T) {
	e := newTestServer(t)

	// missing token is 401
	rec := doJSON(e, http.MethodGet, "/api/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied. No token provided.")

	// malformed token is 400
	rec = doJSON(e, http.MethodGet, "/api/orders", "not-a-token", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token.")
}

func TestOrderFlow(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e, "Alice", "alice@example.com")

	// cart pricing preview
	rec := doJSON(e, http.MethodPost, "/api/cart/add", token,
		`{"productId":1,"quantity":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product added to cart")

	// place the order
	rec = doJSON(e, http.MethodPost, "/api/orders", token,
		`{"items":[{"productId":1,"quantity":2}],"totalAmount":1399.98}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var orderResp struct {
		Success bool        `json:"success"`
		Order   model.Order `json:"order"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orderResp))
	assert.True(t, orderResp.Success)
	assert.Equal(t, int64(1), orderResp.Order.ID)
	assert.Equal(t, model.OrderStatusConfirmed, orderResp.Order.Status)
	assert.True(t, orderResp.Order.TotalAmount.Equal(decimal.RequireFromString("1399.98")))

	// stock decremented to 48
	rec = doJSON(e, http.MethodGet, "/api/products/1", "", "")
	var productResp struct {
		Product model.Product `json:"product"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &productResp))
	assert.Equal(t, 48, productResp.Product.Stock)

	// the order shows up in the caller's list
	rec = doJSON(e, http.MethodGet, "/api/orders", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		Orders []model.Order `json:"orders"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Orders, 1)

	rec = doJSON(e, http.MethodGet, "/api/orders/1", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// a different user cannot see it
	otherToken := registerUser(t, e, "Bob", "bob@example.com")
	rec = doJSON(e, http.MethodGet, "/api/orders/1", otherToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestOrderRejections(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e, "Alice", "alice@example.com")

	// total mismatch
	rec := doJSON(e, http.MethodPost, "/api/orders", token,
		`{"items":[{"productId":1,"quantity":2}],"totalAmount":1000.00}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total amount mismatch")

	// insufficient stock, stock untouched
	rec = doJSON(e, http.MethodPost, "/api/orders", token,
		`{"items":[{"productId":3,"quantity":9999}],"totalAmount":1999700.01}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient stock for Wireless Headphones. Available: 100, Requested: 9999")

	rec = doJSON(e, http.MethodGet, "/api/products/3", "", "")
	var productResp struct {
		Product model.Product `json:"product"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &productResp))
	assert.Equal(t, 100, productResp.Product.Stock)

	// unknown product
	rec = doJSON(e, http.MethodPost, "/api/orders", token,
		`{"items":[{"productId":42,"quantity":1}],"totalAmount":10.00}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product with ID 42 not found")

	// empty items
	rec = doJSON(e, http.MethodPost, "/api/orders", token,
		`{"items":[],"totalAmount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order must contain at least one item")
}

func TestProfileUpdate(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e, "Alice", "alice@example.com")

	rec := doJSON(e, http.MethodPut, "/api/users/profile", token, `{"name":"Alicia"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated successfully")
	assert.Contains(t, rec.Body.String(), "Alicia")

	rec = doJSON(e, http.MethodPut, "/api/users/profile", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCreateProduct(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e, "Alice", "alice@example.com")

	rec := doJSON(e, http.MethodPost, "/api/admin/products", token,
		`{"name":"USB Hub","price":29.99,"description":"7 ports","category":"Electronics","stock":12}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Product model.Product `json:"product"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Product.ID)
	assert.Equal(t, "product7.jpg", resp.Product.Image)

	rec = doJSON(e, http.MethodGet, "/api/products", "", "")
	var listResp struct {
		Products []model.Product `json:"products"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Products, 7)

	// negative stock rejected
	rec = doJSON(e, http.MethodPost, "/api/admin/products", token,
		`{"name":"Bad","price":1.00,"description":"x","category":"y","stock":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownAPIRoute(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "API endpoint not found")
}
