package scan

import (
	"fmt"
	"strings"
	"time"

	"github.com/stockpilot/stockpilot/internal/inventory"
)

// Service resolves scanned codes against the catalog and records hits.
type Service struct {
	store     *Store
	inventory *inventory.Service
}

// NewService builds the scan service.
func NewService(store *Store, inv *inventory.Service) *Service {
	return &Service{store: store, inventory: inv}
}

// Store exposes the backing store for read-only wiring.
func (s *Service) Store() *Store {
	return s.store
}

// Scan resolves code by barcode, then SKU, records the hit and returns it.
func (s *Service) Scan(code string) (Entry, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Entry{}, ErrNoMatch
	}
	item, err := s.inventory.Lookup(code)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrNoMatch, code)
	}
	entry := Entry{Item: item, Code: code, ScannedAt: time.Now().UTC()}
	s.store.Record(entry)
	return entry, nil
}

// AdjustLast applies a quick stock adjustment to the most recently scanned
// item and refreshes the last-scan snapshot.
func (s *Service) AdjustLast(qty int, direction inventory.Direction) (Entry, error) {
	last, ok := s.store.Last()
	if !ok {
		return Entry{}, ErrNothingScanned
	}
	item, err := s.inventory.Adjust(last.Item.ID, inventory.AdjustStockRequest{Quantity: qty, Direction: string(direction)})
	if err != nil {
		return Entry{}, err
	}
	refreshed := Entry{Item: item, Code: last.Code, ScannedAt: last.ScannedAt}
	s.store.SetLast(refreshed)
	return refreshed, nil
}
