package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"namo_back_end/internal/models"
)

// Snapshots feeds the realtime hub with whole-collection reads.
type Snapshots struct {
	products *ProductRepo
	orders   *OrderRepo
	reviews  *ReviewRepo
}

func NewSnapshots(pool *pgxpool.Pool) *Snapshots {
	return &Snapshots{
		products: NewProductRepo(pool),
		orders:   NewOrderRepo(pool),
		reviews:  NewReviewRepo(pool),
	}
}

func (s *Snapshots) ProductSnapshot(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *Snapshots) OrderSnapshot(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *Snapshots) ReviewSnapshot(ctx context.Context) ([]models.Review, error) {
	return s.reviews.List(ctx)
}
