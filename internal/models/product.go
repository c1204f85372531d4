package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id" db:"product_id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description,omitempty" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	Image       string          `json:"image,omitempty" db:"image"`
	Category    string          `json:"category,omitempty" db:"category"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Available reports whether the product can still be sold (stock 0 = unavailable).
func (p Product) Available() bool {
	return p.Stock > 0
}
