package alerts

import "time"

// Kind classifies an alert.
type Kind string

const (
	// KindLowStock fires when an item drops below its reorder threshold.
	KindLowStock Kind = "low_stock"
	// KindOutOfStock fires when an item hits zero quantity.
	KindOutOfStock Kind = "out_of_stock"
	// KindInfo carries free-form notifications.
	KindInfo Kind = "info"
)

// Alert is a notification entry. Only the read flag ever changes.
type Alert struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ItemID    string    `json:"item_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft carries the caller-supplied alert fields.
type Draft struct {
	Kind    Kind
	Message string
	ItemID  string
}
