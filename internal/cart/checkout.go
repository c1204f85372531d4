package cart

import (
	"context"
	"errors"
	"time"

	"namo_back_end/internal/models"
)

// Checkout states. Entering → Submitting → Success → ScanToPay | Confirmed;
// a failed submit drops back to Entering with the cart untouched.
type State int

const (
	StateEntering State = iota
	StateSubmitting
	StateSuccess
	StateScanToPay // terminal view for UPI
	StateConfirmed // terminal view for pay-on-delivery
)

func (s State) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateScanToPay:
		return "scan-to-pay"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

var (
	ErrMissingFields = errors.New("name, email and address are required")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNotEntering   = errors.New("checkout already in progress")
)

// Details are the locally validated form fields.
type Details struct {
	Name          string
	Email         string
	Address       string
	PaymentMethod string
}

// OrderPlacer submits the assembled order and returns its id.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order models.Order) (string, error)
}

// DefaultDisplayDelay is how long the success confirmation stays on screen
// before the payment-method-specific terminal view.
const DefaultDisplayDelay = 2 * time.Second

type Checkout struct {
	store   *Store
	placer  OrderPlacer
	delay   time.Duration
	state   State
	orderID string
}

func NewCheckout(store *Store, placer OrderPlacer) *Checkout {
	return &Checkout{store: store, placer: placer, delay: DefaultDisplayDelay}
}

// WithDisplayDelay overrides the success-view delay (tests use zero).
func (c *Checkout) WithDisplayDelay(d time.Duration) *Checkout {
	c.delay = d
	return c
}

func (c *Checkout) State() State   { return c.state }
func (c *Checkout) OrderID() string { return c.orderID }

// Submit runs the whole sequence: local validation, order placement, the
// success confirmation hold, then the terminal view — clearing the cart
// only once the terminal view is reached. On failure the state returns to
// Entering and the cart is left as it was so the shopper can retry.
func (c *Checkout) Submit(ctx context.Context, details Details) (State, error) {
	if c.state != StateEntering {
		return c.state, ErrNotEntering
	}
	if details.Name == "" || details.Email == "" || details.Address == "" {
		return c.state, ErrMissingFields
	}
	if c.store.Len() == 0 {
		return c.state, ErrEmptyCart
	}

	method := details.PaymentMethod
	if method == "" {
		method = models.PaymentUPI
	}

	items := make([]models.OrderItem, 0, c.store.Len())
	for _, line := range c.store.Lines() {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	order := models.Order{
		Name:          details.Name,
		Email:         details.Email,
		Address:       details.Address,
		TotalPrice:    c.store.Total(),
		PaymentMethod: method,
		Items:         items,
	}

	c.state = StateSubmitting
	orderID, err := c.placer.PlaceOrder(ctx, order)
	if err != nil {
		c.state = StateEntering
		return c.state, err
	}
	c.orderID = orderID
	c.state = StateSuccess

	// Hold the success confirmation before switching to the terminal view.
	// The order is already placed at this point, so a canceled context only
	// cuts the hold short; the flow still settles on the terminal view and
	// clears the cart.
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
		}
	}

	if method == models.PaymentCOD {
		c.state = StateConfirmed
	} else {
		c.state = StateScanToPay
	}

	if err := c.store.Clear(); err != nil {
		return c.state, err
	}
	return c.state, nil
}

// Reset returns to the form, e.g. when the shopper dismisses the terminal view.
func (c *Checkout) Reset() {
	c.state = StateEntering
	c.orderID = ""
}
