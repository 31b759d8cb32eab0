package orders

import (
	"strings"

	"github.com/stockpilot/stockpilot/internal/inventory"
)

// Service validates order input and runs the receiving workflow against the
// inventory catalog.
type Service struct {
	store     *Store
	inventory *inventory.Store
}

// NewService builds the orders service.
func NewService(store *Store, inv *inventory.Store) *Service {
	return &Service{store: store, inventory: inv}
}

// Store exposes the underlying order book for read access.
func (s *Service) Store() *Store {
	return s.store
}

// Create validates and records a purchase order.
func (s *Service) Create(req CreateOrderRequest) (Order, error) {
	if strings.TrimSpace(req.Supplier) == "" {
		return Order{}, ErrSupplierRequired
	}
	if len(req.Lines) == 0 {
		return Order{}, ErrNoLines
	}
	lines := make([]Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = Line{ItemID: l.ItemID, Name: l.Name, Qty: l.Qty, UnitPrice: l.UnitPrice}
	}
	return s.store.Add(Draft{Supplier: strings.TrimSpace(req.Supplier), Lines: lines, Total: req.Total}), nil
}

// UpdateStatus moves an order to the given status.
func (s *Service) UpdateStatus(id string, status Status) (Order, error) {
	switch status {
	case StatusPending, StatusReceived, StatusCancelled:
	default:
		return Order{}, ErrInvalidStatus
	}
	order, ok := s.store.UpdateStatus(id, status)
	if !ok {
		return Order{}, ErrNotFound
	}
	return order, nil
}

// Get returns the order with the given id.
func (s *Service) Get(id string) (Order, error) {
	order, ok := s.store.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	return order, nil
}

// Receive marks a pending order received and stocks in each line. Lines are
// matched to catalog items by id when set, otherwise by case-insensitive
// name; lines matching nothing are reported back rather than failing the
// receipt.
func (s *Service) Receive(id string) (ReceiveResult, error) {
	order, ok := s.store.Get(id)
	if !ok {
		return ReceiveResult{}, ErrNotFound
	}
	if order.Status != StatusPending {
		return ReceiveResult{}, ErrAlreadyReceived
	}

	result := ReceiveResult{}
	for _, line := range order.Lines {
		item, found := s.matchItem(line)
		if !found {
			result.Unmatched = append(result.Unmatched, line.Name)
			continue
		}
		s.inventory.AdjustStock(item.ID, line.Qty, inventory.DirectionIn)
		result.StockedIn++
	}

	order, _ = s.store.UpdateStatus(id, StatusReceived)
	result.Order = order
	return result, nil
}

func (s *Service) matchItem(line Line) (inventory.Item, bool) {
	if line.ItemID != "" {
		if item, ok := s.inventory.Get(line.ItemID); ok {
			return item, true
		}
	}
	for _, item := range s.inventory.List() {
		if strings.EqualFold(item.Name, line.Name) {
			return item, true
		}
	}
	return inventory.Item{}, false
}
