package models

import "time"

// Payment statuses a bill can carry.
const (
	PaymentStatusPaid     = "paid"
	PaymentStatusPending  = "pending"
	PaymentStatusRefunded = "refunded"
)

// Bill represents a finalized transaction for an order. CustomerName and
// CustomerPhone are filled in only when the guest chose to identify
// themselves, so both are nullable.
type Bill struct {
	ID            int64     `json:"id" db:"id"`
	OrderID       *int64    `json:"order_id,omitempty" db:"order_id"`
	Total         float64   `json:"total" db:"total"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	CustomerName  *string   `json:"customer_name,omitempty" db:"customer_name"`
	CustomerPhone *string   `json:"customer_phone,omitempty" db:"customer_phone"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Order         *Order    `json:"order,omitempty"` // Resolved originating order, when it still exists
}
