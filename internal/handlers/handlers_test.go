package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"namo_back_end/internal/handlers"
	"namo_back_end/internal/models"
	"namo_back_end/internal/realtime"
	"namo_back_end/internal/store"
)

// In-memory stand-ins for the pgx repositories. They honor the same
// sentinel errors, so the handlers exercise their real error paths.

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	return f.users, nil
}

type fakeProducts struct {
	products []models.Product
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProducts) List(_ context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProducts) UpdateStock(_ context.Context, id string, stock int) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Stock = stock
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeProducts) SetImage(_ context.Context, id, url string) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Image = url
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeProducts) Search(_ context.Context, _ string) ([]models.Product, error) {
	return f.products, nil
}

type fakeOrders struct {
	orders   []models.Order
	noStock  bool
	products *fakeProducts
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order, decrementStock bool) error {
	if f.noStock {
		return store.ErrInsufficientStock
	}
	if decrementStock && f.products != nil {
		for _, item := range o.Items {
			for i := range f.products.products {
				if f.products.products[i].ID == item.ProductID {
					if f.products.products[i].Stock < item.Quantity {
						return store.ErrInsufficientStock
					}
					f.products.products[i].Stock -= item.Quantity
				}
			}
		}
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrders) List(_ context.Context) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeReviews struct {
	reviews  []models.Review
	products *fakeProducts
}

func (f *fakeReviews) Create(_ context.Context, r *models.Review) error {
	if f.products != nil {
		if _, err := f.products.GetByID(context.Background(), r.ProductID); err != nil {
			return store.ErrNotFound
		}
	}
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeReviews) List(_ context.Context) ([]models.Review, error) {
	return f.reviews, nil
}

type fakeStats struct {
	stats models.Stats
}

func (f *fakeStats) Get(_ context.Context) (*models.Stats, error) {
	s := f.stats
	return &s, nil
}

// fakeBus records published events so tests can assert on broadcasts.
type fakeBus struct {
	events []realtime.Event
}

func (f *fakeBus) Publish(_ context.Context, e realtime.Event) {
	f.events = append(f.events, e)
}

// fakeCache counts invalidations; reads always miss so handlers hit the
// fake stores.
type fakeCache struct {
	invalidations int
}

func (f *fakeCache) Get(_ context.Context) ([]models.Product, bool) { return nil, false }
func (f *fakeCache) Set(_ context.Context, _ []models.Product)      {}
func (f *fakeCache) Invalidate(_ context.Context)                   { f.invalidations++ }

type testEnv struct {
	router   *gin.Engine
	users    *fakeUsers
	products *fakeProducts
	orders   *fakeOrders
	reviews  *fakeReviews
	stats    *fakeStats
	bus      *fakeBus
	cache    *fakeCache
	handler  *handlers.Handler
}

// buildTestEnv wires the handler set to in-memory stores. Routes are
// registered without the auth middlewares so each handler is tested on its
// own behavior; the middleware has its own tests.
func buildTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    &fakeUsers{},
		products: &fakeProducts{},
		stats:    &fakeStats{},
		bus:      &fakeBus{},
		cache:    &fakeCache{},
	}
	env.orders = &fakeOrders{products: env.products}
	env.reviews = &fakeReviews{products: env.products}

	env.handler = &handlers.Handler{
		Users:    env.users,
		Products: env.products,
		Orders:   env.orders,
		Reviews:  env.reviews,
		Stats:    env.stats,
		Bus:      env.bus,
		Cache:    env.cache,
	}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", env.handler.Register)
	api.POST("/login", env.handler.Login)
	api.GET("/users", env.handler.GetUsers)
	api.GET("/products", env.handler.GetProducts)
	api.GET("/products/search", env.handler.SearchProducts)
	api.GET("/products/:id", env.handler.GetProduct)
	api.POST("/products", env.handler.CreateProduct)
	api.PUT("/products/:id", env.handler.UpdateProductStock)
	api.DELETE("/products/:id", env.handler.DeleteProduct)
	api.POST("/orders", env.handler.CreateOrder)
	api.GET("/orders", env.handler.GetOrders)
	api.GET("/orders/:id/qr", env.handler.OrderPaymentQR)
	api.PUT("/orders/:id/status", env.handler.UpdateOrderStatus)
	api.GET("/reviews", env.handler.GetReviews)
	api.POST("/reviews", env.handler.CreateReview)
	api.GET("/stats", env.handler.GetStats)

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func (e *testEnv) seedUser(t *testing.T, email, password, role string) models.User {
	t.Helper()
	u := models.User{
		ID:       "user-" + email,
		Username: "Asha",
		Email:    email,
		Password: hashPassword(t, password),
		Role:     role,
	}
	require.NoError(t, e.users.Create(context.Background(), &u))
	return u
}

func (e *testEnv) seedProduct(t *testing.T, id, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
	}
	require.NoError(t, e.products.Create(context.Background(), &p))
	return p
}
