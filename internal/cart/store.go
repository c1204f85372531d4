// Package cart is the shopper-side state: the in-progress order lines and
// the checkout sequence. It is owned by the application shell and handed
// around explicitly; nothing here talks to the network except through the
// OrderPlacer given to Checkout.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// ShippingFee is the flat add-on applied to every order.
var ShippingFee = decimal.NewFromInt(30)

// Line is one product-quantity pair, denormalized so the cart renders
// without refetching the catalog.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Storage is the serialize/deserialize boundary that survives reloads.
type Storage interface {
	Load() ([]Line, error)
	Save([]Line) error
}

type Store struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage
}

// NewStore builds a cart, restoring any previously persisted lines.
// storage may be nil for a purely in-memory cart.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{storage: storage}
	if storage != nil {
		lines, err := storage.Load()
		if err != nil {
			return nil, err
		}
		s.lines = lines
	}
	return s, nil
}

// Add merges into an existing line for the same product or appends a new
// one. A non-positive quantity counts as 1.
func (s *Store) Add(line Line) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == line.ProductID {
			s.lines[i].Quantity += line.Quantity
			return s.persist()
		}
	}
	s.lines = append(s.lines, line)
	return s.persist()
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1.
// Removal is a separate explicit action. Unknown products are ignored.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	return s.persist()
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist()
}

// Lines returns a copy of the current cart.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	for _, line := range s.lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// Total is subtotal plus the flat shipping fee. An empty cart totals zero:
// there is nothing to ship.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	empty := len(s.lines) == 0
	s.mu.Unlock()

	if empty {
		return decimal.Zero
	}
	return s.Subtotal().Add(ShippingFee)
}

// persist must be called with the lock held.
func (s *Store) persist() error {
	if s.storage == nil {
		return nil
	}
	return s.storage.Save(s.lines)
}
