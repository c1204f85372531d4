// Package handlers contains the REST surface. The handler set takes its
// collaborators as interfaces so tests can run against in-memory stores.
package handlers

import (
	"context"

	"namo_back_end/internal/models"
	"namo_back_end/internal/realtime"
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	UpdateStock(ctx context.Context, id string, stock int) error
	SetImage(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order, decrementStock bool) error
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type ReviewStore interface {
	Create(ctx context.Context, r *models.Review) error
	List(ctx context.Context) ([]models.Review, error)
}

type StatsStore interface {
	Get(ctx context.Context) (*models.Stats, error)
}

type Broadcaster interface {
	Publish(ctx context.Context, e realtime.Event)
}

// ProductCache may be nil (tests, Redis outage at boot).
type ProductCache interface {
	Get(ctx context.Context) ([]models.Product, bool)
	Set(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

type Handler struct {
	Users    UserStore
	Products ProductStore
	Orders   OrderStore
	Reviews  ReviewStore
	Stats    StatsStore
	Bus      Broadcaster
	Cache    ProductCache

	// Mail is called asynchronously after order creation; nil disables it.
	Mail func(models.Order) error

	// StockDecrement mirrors STOCK_DECREMENT_ON_ORDER.
	StockDecrement bool
}

func (h *Handler) invalidateProducts(ctx context.Context) {
	if h.Cache != nil {
		h.Cache.Invalidate(ctx)
	}
}

func (h *Handler) publish(ctx context.Context, entity, action, id string) {
	if h.Bus != nil {
		h.Bus.Publish(ctx, realtime.Event{Entity: entity, Action: action, ID: id})
	}
}
