package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"goshop/internal/auth"
	"goshop/internal/config"
	"goshop/internal/order"
	"goshop/internal/product"
	"goshop/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of product.Service
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, opts product.ListOptions) ([]product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, params product.CreateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService is a mock implementation of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (*user.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*user.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AuthResult), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// MockOrderService is a mock implementation of order.Service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, userID uint, draft order.Draft) (*order.CheckoutResult, error) {
	args := m.Called(ctx, userID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CheckoutResult), args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) ListByUser(ctx context.Context, userID uint) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID uint, to order.Status) (*order.Order, error) {
	args := m.Called(ctx, orderID, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type testEnv struct {
	router   *gin.Engine
	products *MockProductService
	users    *MockUserService
	orders   *MockOrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "testsecret")
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		products: new(MockProductService),
		users:    new(MockUserService),
		orders:   new(MockOrderService),
	}
	env.router = NewRouter(Deps{
		Config: &config.Config{
			UploadDir:     t.TempDir(),
			PublicBaseURL: "http://localhost:8080",
			CORSOrigin:    "http://localhost:5173",
		},
		Products: env.products,
		Users:    env.users,
		Orders:   env.orders,
	})
	return env
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	env.products.On("List", mock.Anything, product.ListOptions{Search: "sepatu", Category: "fashion"}).
		Return([]product.Product{{ID: 1, Name: "Sepatu Lari", Stock: 5}}, nil)

	w := env.do(http.MethodGet, "/api/products?search=sepatu&category=fashion", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sepatu Lari")
	env.products.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("Login", mock.Anything, "budi@mail.com", "rahasia").
			Return(&user.AuthResult{Token: "tok", Role: "customer", UserID: 1, Name: "Budi"}, nil)

		w := env.do(http.MethodPost, "/api/login", "", gin.H{"email": "budi@mail.com", "password": "rahasia"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
		assert.Contains(t, w.Body.String(), `"user_id":1`)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("Login", mock.Anything, "budi@mail.com", "salah").
			Return(nil, user.ErrInvalidCredentials)

		w := env.do(http.MethodPost, "/api/login", "", gin.H{"email": "budi@mail.com", "password": "salah"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing body fields", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/api/login", "", gin.H{"email": "budi@mail.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckout(t *testing.T) {
	draft := order.Draft{
		Customer:      "Member",
		Address:       "Jl. A No.1",
		PaymentMethod: "Invoice",
		Total:         500000,
		Items:         []order.DraftItem{{ProductID: 10, Name: "Sepatu Lari", Price: 250000, Quantity: 2}},
	}

	t.Run("Requires auth", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/api/checkout", "", draft)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env.orders.AssertNotCalled(t, "Checkout")
	})

	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		token, err := auth.GenerateJWT(1, auth.RoleCustomer, "budi@mail.com")
		require.NoError(t, err)

		env.orders.On("Checkout", mock.Anything, uint(1), draft).
			Return(&order.CheckoutResult{OrderID: 7, PaymentURL: "https://pay.example/inv-1"}, nil)

		w := env.do(http.MethodPost, "/api/checkout", token, draft)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payment_url":"https://pay.example/inv-1"`)
	})

	t.Run("Empty address is a 400", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(1, auth.RoleCustomer, "budi@mail.com")

		bad := draft
		bad.Address = ""
		env.orders.On("Checkout", mock.Anything, uint(1), bad).
			Return(nil, order.ErrEmptyAddress)

		w := env.do(http.MethodPost, "/api/checkout", token, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Payment failure is a 502", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(1, auth.RoleCustomer, "budi@mail.com")

		env.orders.On("Checkout", mock.Anything, uint(1), draft).
			Return(nil, order.ErrPaymentFailed)

		w := env.do(http.MethodPost, "/api/checkout", token, draft)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestOrderListings(t *testing.T) {
	t.Run("My orders scoped to caller", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(3, auth.RoleCustomer, "siti@mail.com")

		env.orders.On("ListByUser", mock.Anything, uint(3)).
			Return([]order.Order{{ID: 7, UserID: 3, Status: order.StatusDikirim}}, nil)

		w := env.do(http.MethodGet, "/api/my/orders", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Dikirim"`)
	})

	t.Run("Admin listing needs admin role", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(3, auth.RoleCustomer, "siti@mail.com")

		w := env.do(http.MethodGet, "/api/admin/orders", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin listing", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(1, auth.RoleAdmin, "admin@goshop.id")

		env.orders.On("ListAll", mock.Anything).
			Return([]order.Order{{ID: 7, Status: order.StatusPending}}, nil)

		w := env.do(http.MethodGet, "/api/admin/orders", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(1, auth.RoleAdmin, "admin@goshop.id")

		env.orders.On("UpdateStatus", mock.Anything, uint(7), order.StatusDikirim).
			Return(&order.Order{ID: 7, Status: order.StatusDikirim}, nil)

		w := env.do(http.MethodPut, "/api/admin/orders/7", token, gin.H{"status": "Dikirim"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Dikirim"`)
	})

	t.Run("Terminal order rejected", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(1, auth.RoleAdmin, "admin@goshop.id")

		env.orders.On("UpdateStatus", mock.Anything, uint(8), order.StatusDiproses).
			Return(nil, order.ErrOrderFinal)

		w := env.do(http.MethodPut, "/api/admin/orders/8", token, gin.H{"status": "Diproses"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := auth.GenerateJWT(1, auth.RoleAdmin, "admin@goshop.id")

		w := env.do(http.MethodPut, "/api/admin/orders/abc", token, gin.H{"status": "Diproses"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
