package realtime

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"namo_back_end/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// All origins allowed; the API itself is CORS-restricted.
		return true
	},
}

// Snapshotter re-reads a whole collection after a write. Implemented by the
// store repositories.
type Snapshotter interface {
	ProductSnapshot(ctx context.Context) ([]models.Product, error)
	OrderSnapshot(ctx context.Context) ([]models.Order, error)
	ReviewSnapshot(ctx context.Context) ([]models.Review, error)
}

// Hub relays change events to websocket clients as full-collection messages.
type Hub struct {
	bus       *Bus
	snapshots Snapshotter
}

func NewHub(bus *Bus, snapshots Snapshotter) *Hub {
	return &Hub{bus: bus, snapshots: snapshots}
}

type message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Serve upgrades the request and streams updates until the client goes away.
// Each connection gets its own Redis subscription, an initial snapshot of
// every collection, and a ping every 30 seconds to keep the connection warm.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()
	log.Println("✅ Client connected:", conn.RemoteAddr())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	pubsub := h.bus.Subscribe(ctx)
	defer pubsub.Close()
	ch := pubsub.Channel()

	// A late joiner has no way to request missed updates: the initial
	// snapshots are its only catch-up mechanism.
	for _, entity := range []string{EntityProduct, EntityOrder, EntityReview} {
		if err := h.send(ctx, conn, entity); err != nil {
			log.Printf("❌ Initial snapshot error: %v", err)
			return
		}
	}

	// Reader goroutine: we never expect client messages, but reading is what
	// detects a closed peer.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("⚠️ Dropping malformed event: %v", err)
				continue
			}
			if err := h.send(ctx, conn, ev.Entity); err != nil {
				log.Printf("❌ WebSocket send error: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			log.Println("❌ Client disconnected:", conn.RemoteAddr())
			return
		}
	}
}

func (h *Hub) send(ctx context.Context, conn *websocket.Conn, entity string) error {
	var data interface{}
	var err error

	switch entity {
	case EntityProduct:
		data, err = h.snapshots.ProductSnapshot(ctx)
	case EntityOrder:
		data, err = h.snapshots.OrderSnapshot(ctx)
	case EntityReview:
		data, err = h.snapshots.ReviewSnapshot(ctx)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	return conn.WriteJSON(message{Event: Event{Entity: entity}.Name(), Data: data})
}
