package scan

import (
	"errors"
	"time"

	"github.com/stockpilot/stockpilot/internal/inventory"
)

// Entry is a point-in-time snapshot of a scanned item. Later catalog edits
// do not touch recorded entries.
type Entry struct {
	Item      inventory.Item `json:"item"`
	Code      string         `json:"code"`
	ScannedAt time.Time      `json:"scanned_at"`
}

var (
	// ErrNoMatch means no item carries the scanned code.
	ErrNoMatch = errors.New("no item matches scanned code")
	// ErrNothingScanned means a quick adjust was requested with no prior scan.
	ErrNothingScanned = errors.New("nothing scanned yet")
)
