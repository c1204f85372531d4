// Package realtime pushes collection updates to connected storefront and
// dashboard clients. Mutations publish typed change events on a Redis
// channel; the websocket edge resolves each event to a named
// "<entity>Update" message carrying the full, freshly-queried collection.
package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const Channel = "namo:updates"

const (
	EntityProduct = "product"
	EntityOrder   = "order"
	EntityReview  = "review"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one mutation. The ID lets a future consumer apply deltas;
// the current websocket edge only uses Entity to pick the snapshot to resend.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Name is the wire event name the storefront listens for.
func (e Event) Name() string {
	return e.Entity + "Update"
}

type Bus struct {
	rdb *redis.Client
}

func NewBus(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

// Publish is fire-and-forget, at-most-once: a failed publish is logged and
// dropped, clients catch up through their initial snapshot on reconnect.
func (b *Bus) Publish(ctx context.Context, e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		log.Printf("❌ Event marshal error: %v", err)
		return
	}
	if err := b.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Printf("⚠️ Broadcast publish failed (%s %s): %v", e.Entity, e.Action, err)
	}
}

// Subscribe opens a dedicated subscription; the caller owns its lifetime.
func (b *Bus) Subscribe(ctx context.Context) *redis.PubSub {
	return b.rdb.Subscribe(ctx, Channel)
}
