package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"namo_back_end/internal/models"
)

type ProductRepo struct {
	q Querier
}

func NewProductRepo(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `product_id, name, description, price, stock, image, category, created_at, updated_at`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Image, &p.Category, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (product_id, name, description, price, stock, image, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.Image, p.Category, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// UpdateStock sets the absolute stock value (admin adjustment).
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE product_id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetImage stores the uploaded image URL on the product row.
func (r *ProductRepo) SetImage(ctx context.Context, id, url string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET image = $2, updated_at = now() WHERE product_id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("set image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Search is the database fallback behind the Elasticsearch index.
func (r *ProductRepo) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := "%" + query + "%"
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
		 ORDER BY created_at`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
