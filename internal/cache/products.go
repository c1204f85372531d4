// Package cache keeps the hot product collection in Redis so catalog reads
// skip the database between mutations.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"namo_back_end/internal/models"
)

const productKey = "products:all"

type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb, ttl: time.Hour}
}

func (c *ProductCache) Get(ctx context.Context) ([]models.Product, bool) {
	val, err := c.rdb.Get(ctx, productKey).Result()
	if err != nil || val == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) Set(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		c.rdb.Set(ctx, productKey, data, c.ttl)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context) {
	c.rdb.Del(ctx, productKey)
}
