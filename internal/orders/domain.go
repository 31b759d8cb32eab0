package orders

import (
	"errors"
	"time"
)

// Status enumerates the purchase order lifecycle.
type Status string

const (
	// StatusPending is the initial state of a created order.
	StatusPending Status = "pending"
	// StatusReceived means the goods have arrived and were stocked in.
	StatusReceived Status = "received"
	// StatusCancelled marks an order that will never be received.
	StatusCancelled Status = "cancelled"
)

// Line is a product entry on a purchase order. ItemID links the line to a
// catalog item when known; receiving falls back to a case-insensitive name
// match, the way the original receiving flow did.
type Line struct {
	ItemID    string  `json:"item_id,omitempty"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a supplier purchase order. Orders are never deleted; only their
// status moves.
type Order struct {
	ID        string     `json:"id"`
	Supplier  string     `json:"supplier"`
	Lines     []Line     `json:"lines"`
	Status    Status     `json:"status"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Draft carries caller-supplied order fields. A zero total is computed from
// the lines.
type Draft struct {
	Supplier string
	Lines    []Line
	Total    float64
}

// ReceiveResult reports what a receiving pass accomplished.
type ReceiveResult struct {
	Order     Order    `json:"order"`
	StockedIn int      `json:"stocked_in"`
	Unmatched []string `json:"unmatched,omitempty"`
}

var (
	// ErrNotFound indicates the referenced order does not exist.
	ErrNotFound = errors.New("orders: order not found")
	// ErrInvalidStatus indicates an unknown status value.
	ErrInvalidStatus = errors.New("orders: invalid status")
	// ErrAlreadyReceived triggered when receiving a non-pending order.
	ErrAlreadyReceived = errors.New("orders: order is not pending")
	// ErrNoLines indicates an order without lines.
	ErrNoLines = errors.New("orders: at least one line is required")
	// ErrSupplierRequired indicates a missing supplier name.
	ErrSupplierRequired = errors.New("orders: supplier is required")
)
