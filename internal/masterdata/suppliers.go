package masterdata

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SupplierDraft carries the caller-supplied supplier fields.
type SupplierDraft struct {
	Name    string
	Contact string
	Email   string
	Phone   string
	Address string
}

// SupplierStore owns the supplier records.
type SupplierStore struct {
	mu        sync.RWMutex
	suppliers []Supplier
}

// NewSupplierStore returns an empty supplier store.
func NewSupplierStore() *SupplierStore {
	return &SupplierStore{}
}

// Add assigns an id and timestamps and appends the supplier.
func (s *SupplierStore) Add(draft SupplierDraft) Supplier {
	now := time.Now().UTC()
	supplier := Supplier{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Contact:   draft.Contact,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Address:   draft.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append(s.suppliers, supplier)
	return supplier
}

// Update overwrites the supplier's fields and stamps UpdatedAt.
func (s *SupplierStore) Update(id string, draft SupplierDraft) (Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID != id {
			continue
		}
		s.suppliers[i].Name = draft.Name
		s.suppliers[i].Contact = draft.Contact
		s.suppliers[i].Email = draft.Email
		s.suppliers[i].Phone = draft.Phone
		s.suppliers[i].Address = draft.Address
		s.suppliers[i].UpdatedAt = time.Now().UTC()
		return s.suppliers[i], true
	}
	return Supplier{}, false
}

// Delete removes the supplier. Unknown ids are a silent no-op.
func (s *SupplierStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return
		}
	}
}

// Get returns the supplier with the given id.
func (s *SupplierStore) Get(id string) (Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, supplier := range s.suppliers {
		if supplier.ID == id {
			return supplier, true
		}
	}
	return Supplier{}, false
}

// List returns the suppliers sorted by name.
func (s *SupplierStore) List() []Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
