package masterdata

import (
	"errors"
	"time"
)

// Supplier is a vendor purchase orders can be raised against.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category is a named grouping for catalog items.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	// ErrNotFound means no record carries the given id.
	ErrNotFound = errors.New("record not found")
	// ErrNameRequired rejects blank names.
	ErrNameRequired = errors.New("name is required")
	// ErrDuplicateName rejects a category name already in use.
	ErrDuplicateName = errors.New("name already in use")
)
