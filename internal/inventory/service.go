package inventory

import (
	"fmt"
	"strings"
)

// Service is the validating layer in front of the permissive Store. The
// store itself never rejects input; every check the original UI performed
// before mutating lives here instead.
type Service struct {
	store *Store
}

// NewService builds a Service around the given store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Store exposes the underlying state container for read access and
// cross-domain orchestration (checkout, receiving, insights).
func (s *Service) Store() *Store {
	return s.store
}

// Create validates the request and adds the item.
func (s *Service) Create(req CreateItemRequest) (Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Item{}, ErrNameRequired
	}
	if req.Price < 0 || req.Cost < 0 || req.Qty < 0 || req.Min < 0 {
		return Item{}, fmt.Errorf("%w: numeric fields must be non-negative", ErrInvalidQuantity)
	}
	return s.store.Add(Draft{
		Name:        strings.TrimSpace(req.Name),
		Barcode:     req.Barcode,
		SKU:         req.SKU,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Qty:         req.Qty,
		Min:         req.Min,
		Location:    req.Location,
		Description: req.Description,
	}), nil
}

// Update applies a patch to the item.
func (s *Service) Update(id string, req UpdateItemRequest) (Item, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return Item{}, ErrNameRequired
	}
	item, ok := s.store.Update(id, Patch{
		Name:        req.Name,
		Barcode:     req.Barcode,
		SKU:         req.SKU,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Qty:         req.Qty,
		Min:         req.Min,
		Location:    req.Location,
		Description: req.Description,
	})
	if !ok {
		return Item{}, ErrNotFound
	}
	return item, nil
}

// Adjust validates and applies a stock movement. Outbound movements larger
// than the available quantity are rejected here; the store would clamp them
// at zero regardless.
func (s *Service) Adjust(id string, req AdjustStockRequest) (Item, error) {
	direction := Direction(req.Direction)
	if direction != DirectionIn && direction != DirectionOut {
		return Item{}, ErrInvalidDirection
	}
	if req.Quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	item, ok := s.store.Get(id)
	if !ok {
		return Item{}, ErrNotFound
	}
	if direction == DirectionOut && req.Quantity > item.Qty {
		return Item{}, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, req.Quantity, item.Qty)
	}
	item, _ = s.store.AdjustStock(id, req.Quantity, direction)
	return item, nil
}

// Get returns the item with the given id.
func (s *Service) Get(id string) (Item, error) {
	item, ok := s.store.Get(id)
	if !ok {
		return Item{}, ErrNotFound
	}
	return item, nil
}

// Lookup resolves an item by barcode first, then by SKU.
func (s *Service) Lookup(code string) (Item, error) {
	if item, ok := s.store.GetByBarcode(code); ok {
		return item, nil
	}
	if item, ok := s.store.GetBySKU(code); ok {
		return item, nil
	}
	return Item{}, ErrNotFound
}

// Delete removes the item. Deleting an absent id is not an error.
func (s *Service) Delete(id string) {
	s.store.Delete(id)
}
