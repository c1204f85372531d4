package database

import (
	"context"
	"log"
)

// No migration tooling: the tables are created idempotently at boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    UUID PRIMARY KEY,
		username   TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'customer',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id  UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(10,2) NOT NULL CHECK (price > 0),
		stock       INT NOT NULL CHECK (stock >= 0),
		image       TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id       UUID PRIMARY KEY,
		name           TEXT NOT NULL,
		email          TEXT NOT NULL,
		address        TEXT NOT NULL,
		total_price    NUMERIC(10,2) NOT NULL CHECK (total_price > 0),
		payment_method TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'Pending',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id   UUID NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		product_id UUID NOT NULL,
		name       TEXT NOT NULL,
		price      NUMERIC(10,2) NOT NULL,
		quantity   INT NOT NULL CHECK (quantity >= 1)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id  UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products(product_id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		review     TEXT NOT NULL,
		rating     INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
}

func InitSchema(ctx context.Context) {
	for _, stmt := range schemaStatements {
		if _, err := Postgres.Exec(ctx, stmt); err != nil {
			log.Fatal("❌ Schema init error:", err)
		}
	}
	log.Println("✅ Database schema ready")
}
