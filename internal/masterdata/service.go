package masterdata

import "strings"

// Service applies the name rules the stores leave to callers.
type Service struct {
	suppliers  *SupplierStore
	categories *CategoryStore
}

// NewService builds the master data service.
func NewService(suppliers *SupplierStore, categories *CategoryStore) *Service {
	return &Service{suppliers: suppliers, categories: categories}
}

// Suppliers exposes the supplier store for read-only wiring.
func (s *Service) Suppliers() *SupplierStore {
	return s.suppliers
}

// Categories exposes the category store for read-only wiring.
func (s *Service) Categories() *CategoryStore {
	return s.categories
}

// CreateSupplier validates and adds a supplier.
func (s *Service) CreateSupplier(draft SupplierDraft) (Supplier, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return Supplier{}, ErrNameRequired
	}
	return s.suppliers.Add(draft), nil
}

// UpdateSupplier validates and overwrites a supplier's fields.
func (s *Service) UpdateSupplier(id string, draft SupplierDraft) (Supplier, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return Supplier{}, ErrNameRequired
	}
	supplier, ok := s.suppliers.Update(id, draft)
	if !ok {
		return Supplier{}, ErrNotFound
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier.
func (s *Service) DeleteSupplier(id string) {
	s.suppliers.Delete(id)
}

// CreateCategory validates and adds a category.
func (s *Service) CreateCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrNameRequired
	}
	return s.categories.Add(name)
}

// RenameCategory validates and renames a category.
func (s *Service) RenameCategory(id, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrNameRequired
	}
	return s.categories.Rename(id, name)
}

// DeleteCategory removes a category.
func (s *Service) DeleteCategory(id string) {
	s.categories.Delete(id)
}
