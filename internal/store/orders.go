package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"namo_back_end/internal/models"
)

// OrderRepo needs the pool itself: order creation can span orders,
// order_items and a stock decrement in one transaction.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts a Pending order with its lines. When decrementStock is set,
// each line also decrements product stock under a stock >= quantity guard;
// a line that cannot be satisfied fails the whole order with
// ErrInsufficientStock and rolls everything back.
func (r *OrderRepo) Create(ctx context.Context, o *models.Order, decrementStock bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (order_id, name, email, address, total_price, payment_method, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.Name, o.Email, o.Address, o.TotalPrice, o.PaymentMethod, o.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			o.ID, item.ProductID, item.Name, item.Price, item.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}

		if decrementStock {
			cmd, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock - $2, updated_at = now()
				 WHERE product_id = $1 AND stock >= $2`,
				item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if cmd.RowsAffected() == 0 {
				return ErrInsufficientStock
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepo) List(ctx context.Context) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT order_id, name, email, address, total_price, payment_method, status, created_at
		 FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Address, &o.TotalPrice,
			&o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := r.pool.QueryRow(ctx,
		`SELECT order_id, name, email, address, total_price, payment_method, status, created_at
		 FROM orders WHERE order_id = $1`, id).
		Scan(&o.ID, &o.Name, &o.Email, &o.Address, &o.TotalPrice,
			&o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, name, price, quantity FROM order_items WHERE order_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	return &o, rows.Err()
}

// UpdateStatus writes the new status without checking the previous one:
// the forward-only rule is a dashboard affordance, not a store guard.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE order_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
