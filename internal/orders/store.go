package orders

import (
	"fmt"
	"sync"
	"time"
)

// firstOrderNumber seeds the sequential PO counter.
const firstOrderNumber = 1001

// Store owns the purchase orders. Numbering is sequential and gap-free for
// the lifetime of the store instance.
type Store struct {
	mu         sync.RWMutex
	orders     []Order
	nextNumber int
}

// NewStore returns an empty order book.
func NewStore() *Store {
	return &Store{nextNumber: firstOrderNumber}
}

// Add assigns the next PO number and creation time, computes the total from
// the lines when absent, and prepends.
func (s *Store) Add(draft Draft) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(draft.Lines))
	copy(lines, draft.Lines)

	total := draft.Total
	if total == 0 {
		for _, line := range lines {
			total += float64(line.Qty) * line.UnitPrice
		}
	}

	order := Order{
		ID:        fmt.Sprintf("PO-%d", s.nextNumber),
		Supplier:  draft.Supplier,
		Lines:     lines,
		Status:    StatusPending,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
	s.nextNumber++
	s.orders = append([]Order{order}, s.orders...)
	return order
}

// UpdateStatus sets the status and stamps UpdatedAt. Returns false when the
// id is unknown.
func (s *Store) UpdateStatus(id string, status Status) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = &now
		return s.orders[i], true
	}
	return Order{}, false
}

// Get returns the order with the given id.
func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return Order{}, false
}

// List returns a copy of the order book, most recent first.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Pending returns orders still awaiting receipt.
func (s *Store) Pending() []Order {
	return s.filter(func(o Order) bool { return o.Status != StatusReceived })
}

// Received returns orders that have been stocked in.
func (s *Store) Received() []Order {
	return s.filter(func(o Order) bool { return o.Status == StatusReceived })
}

// TotalValue sums the order totals.
func (s *Store) TotalValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, order := range s.orders {
		sum += order.Total
	}
	return sum
}

func (s *Store) filter(keep func(Order) bool) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Order
	for _, order := range s.orders {
		if keep(order) {
			out = append(out, order)
		}
	}
	return out
}
