package models

import "time"

type Review struct {
	ID        string    `json:"id" db:"review_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Review    string    `json:"review" db:"review"`
	Rating    int       `json:"rating" db:"rating"` // 1-5
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
