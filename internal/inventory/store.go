package inventory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the item catalog. All state is process-local and volatile;
// mutators are permissive: a missing id is a silent no-op, never an error.
// Callers are expected to validate input before mutating (see Service).
type Store struct {
	mu    sync.RWMutex
	items []Item
}

// NewStore returns an empty catalog.
func NewStore() *Store {
	return &Store{}
}

// Add assigns a fresh id, creation time and derived status, then appends.
// There is no dedup check: two items may share a name or barcode.
func (s *Store) Add(draft Draft) Item {
	item := Item{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Barcode:     draft.Barcode,
		SKU:         draft.SKU,
		Category:    draft.Category,
		Price:       draft.Price,
		Cost:        draft.Cost,
		Qty:         draft.Qty,
		Min:         draft.Min,
		Status:      CalculateStatus(draft.Qty, draft.Min),
		Location:    draft.Location,
		Description: draft.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return item
}

// Update merges the patch into the matching item and re-derives status.
// Returns the updated item and true, or false when the id is unknown.
func (s *Store) Update(id string, patch Patch) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Barcode != nil {
			item.Barcode = *patch.Barcode
		}
		if patch.SKU != nil {
			item.SKU = *patch.SKU
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.Cost != nil {
			item.Cost = *patch.Cost
		}
		if patch.Qty != nil {
			item.Qty = *patch.Qty
		}
		if patch.Min != nil {
			item.Min = *patch.Min
		}
		item.Status = CalculateStatus(item.Qty, item.Min)
		if patch.Location != nil {
			item.Location = *patch.Location
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		return *item, true
	}
	return Item{}, false
}

// AdjustStock applies a movement and clamps the result at zero. The clamp is
// the store's own safety net; callers validate available stock beforehand.
func (s *Store) AdjustStock(id string, quantity int, direction Direction) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		qty := item.Qty + quantity
		if direction == DirectionOut {
			qty = item.Qty - quantity
		}
		if qty < 0 {
			qty = 0
		}
		item.Qty = qty
		item.Status = CalculateStatus(item.Qty, item.Min)
		return *item, true
	}
	return Item{}, false
}

// Delete removes the item by id. Removing an absent id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// GetByBarcode returns the first item with an exact barcode match.
func (s *Store) GetByBarcode(barcode string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Barcode != "" && item.Barcode == barcode {
			return item, true
		}
	}
	return Item{}, false
}

// GetBySKU returns the first item whose SKU matches case-insensitively.
func (s *Store) GetBySKU(sku string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.SKU != "" && strings.EqualFold(item.SKU, sku) {
			return item, true
		}
	}
	return Item{}, false
}

// List returns a copy of the catalog in insertion order.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ByStatus returns items carrying the given status.
func (s *Store) ByStatus(status Status) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Item
	for _, item := range s.items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// LowStock returns items below their reorder threshold but not empty.
func (s *Store) LowStock() []Item {
	return s.ByStatus(StatusWarning)
}

// OutOfStock returns items with zero quantity.
func (s *Store) OutOfStock() []Item {
	return s.ByStatus(StatusDanger)
}

// Categories returns the distinct non-empty categories, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, item := range s.items {
		if item.Category != "" {
			seen[item.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// ByCategory returns items in the given category.
func (s *Store) ByCategory(category string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Item
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Summary aggregates catalog statistics in a single pass.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := Summary{TotalItems: len(s.items)}
	seen := make(map[string]struct{})
	for _, item := range s.items {
		sum.TotalStock += item.Qty
		sum.TotalValue += float64(item.Qty) * item.Price
		sum.TotalCost += float64(item.Qty) * item.Cost
		switch item.Status {
		case StatusWarning:
			sum.LowStock++
		case StatusDanger:
			sum.OutOfStock++
		}
		if item.Category != "" {
			seen[item.Category] = struct{}{}
		}
	}
	sum.Categories = len(seen)
	return sum
}
