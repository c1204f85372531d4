package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses move forward only: Pending → Dispatched → Delivered.
const (
	StatusPending    = "Pending"
	StatusDispatched = "Dispatched"
	StatusDelivered  = "Delivered"
)

const (
	PaymentUPI = "UPI"
	PaymentCOD = "COD"
)

type Order struct {
	ID            string          `json:"id" db:"order_id"`
	Name          string          `json:"name" db:"name"`
	Email         string          `json:"email" db:"email"`
	Address       string          `json:"address" db:"address"`
	TotalPrice    decimal.Decimal `json:"total_price" db:"total_price"`
	PaymentMethod string          `json:"payment_method" db:"payment_method"`
	Status        string          `json:"status" db:"status"`
	Items         []OrderItem     `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// OrderItem is a denormalized cart line captured at checkout time.
type OrderItem struct {
	ProductID string          `json:"product_id" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Quantity  int             `json:"quantity" db:"quantity"`
}

// ValidStatusUpdate reports whether s is accepted by the status endpoint.
// Pending is the creation-only state and can never be set back.
func ValidStatusUpdate(s string) bool {
	return s == StatusDispatched || s == StatusDelivered
}

// ValidPaymentMethod accepts the two supported checkout methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentUPI || m == PaymentCOD
}

// CanTransition is the forward-only rule a dashboard uses to enable the
// Dispatch/Deliver actions. The status endpoint itself does not enforce it.
func (o Order) CanTransition(to string) bool {
	switch to {
	case StatusDispatched:
		return o.Status == StatusPending
	case StatusDelivered:
		return o.Status == StatusDispatched
	default:
		return false
	}
}
