package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"namo_back_end/internal/models"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	orders *OrderRepo
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool, orders: NewOrderRepo(pool)}
}

// Get aggregates everything the admin dashboard needs in one response:
// total sales, order count, stock across products, and the order list.
func (r *StatsRepo) Get(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_price), 0), COUNT(*) FROM orders`).
		Scan(&stats.TotalSales, &stats.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	err = r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0) FROM products`).Scan(&stats.Stock)
	if err != nil {
		return nil, fmt.Errorf("stock stats: %w", err)
	}

	stats.Orders, err = r.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
