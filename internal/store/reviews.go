package store

import (
	"context"
	"fmt"

	"namo_back_end/internal/models"
)

type ReviewRepo struct {
	q Querier
}

func NewReviewRepo(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create inserts a review. The product reference is enforced: a missing
// product surfaces as ErrNotFound through the foreign key.
func (r *ReviewRepo) Create(ctx context.Context, rev *models.Review) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO reviews (review_id, product_id, name, review, rating)
		 VALUES ($1, $2, $3, $4, $5)`,
		rev.ID, rev.ProductID, rev.Name, rev.Review, rev.Rating)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	rows, err := r.q.Query(ctx,
		`SELECT review_id, product_id, name, review, rating, created_at
		 FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Name, &rev.Review,
			&rev.Rating, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
