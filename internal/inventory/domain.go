package inventory

import (
	"errors"
	"time"
)

// Status classifies an item's availability from quantity vs minimum threshold.
type Status string

const (
	// StatusSuccess means stock is at or above the reorder threshold.
	StatusSuccess Status = "success"
	// StatusWarning means stock is below the reorder threshold but not empty.
	StatusWarning Status = "warning"
	// StatusDanger means the item is out of stock.
	StatusDanger Status = "danger"
)

// Direction enumerates stock movement directions.
type Direction string

const (
	// DirectionIn represents receiving stock.
	DirectionIn Direction = "in"
	// DirectionOut represents selling or removing stock.
	DirectionOut Direction = "out"
)

// DefaultCategory is assigned to items created without a category.
const DefaultCategory = "Other"

// Item is a catalog entry owned by the Store.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Barcode     string    `json:"barcode,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Qty         int       `json:"qty"`
	Min         int       `json:"min"`
	Status      Status    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Draft carries the caller-supplied fields for a new item. Zero numeric
// values are kept as zero; an empty category falls back to DefaultCategory.
type Draft struct {
	Name        string
	Barcode     string
	SKU         string
	Category    string
	Price       float64
	Cost        float64
	Qty         int
	Min         int
	Location    string
	Description string
}

// Patch holds optional updates for an existing item. Nil fields are left
// untouched; status is always re-derived from the merged qty and min.
type Patch struct {
	Name        *string
	Barcode     *string
	SKU         *string
	Category    *string
	Price       *float64
	Cost        *float64
	Qty         *int
	Min         *int
	Location    *string
	Description *string
}

// Summary aggregates catalog-wide figures.
type Summary struct {
	TotalItems int     `json:"total_items"`
	TotalStock int     `json:"total_stock"`
	TotalValue float64 `json:"total_value"`
	TotalCost  float64 `json:"total_cost"`
	LowStock   int     `json:"low_stock"`
	OutOfStock int     `json:"out_of_stock"`
	Categories int     `json:"categories"`
}

// CalculateStatus derives the stock status from quantity and minimum.
// It is the only place status is ever computed.
func CalculateStatus(qty, min int) Status {
	if qty == 0 {
		return StatusDanger
	}
	if qty < min {
		return StatusWarning
	}
	return StatusSuccess
}

var (
	// ErrNotFound indicates the referenced item does not exist.
	ErrNotFound = errors.New("inventory: item not found")
	// ErrNameRequired indicates a missing item name.
	ErrNameRequired = errors.New("inventory: item name is required")
	// ErrInvalidQuantity indicates a non-positive movement quantity.
	ErrInvalidQuantity = errors.New("inventory: quantity must be positive")
	// ErrInvalidDirection indicates an unknown movement direction.
	ErrInvalidDirection = errors.New("inventory: direction must be in or out")
	// ErrInsufficientStock triggered when an outbound movement exceeds available stock.
	ErrInsufficientStock = errors.New("inventory: insufficient stock")
)
