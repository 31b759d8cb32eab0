package masterdata

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CategoryStore owns the named categories. Names are unique ignoring case.
type CategoryStore struct {
	mu         sync.RWMutex
	categories []Category
}

// NewCategoryStore returns an empty category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

// Add appends a category. Names already in use are rejected.
func (s *CategoryStore) Add(name string) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return Category{}, ErrDuplicateName
		}
	}
	category := Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	s.categories = append(s.categories, category)
	return category, nil
}

// Rename changes a category's name, keeping names unique ignoring case.
func (s *CategoryStore) Rename(id, name string) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID != id && strings.EqualFold(c.Name, name) {
			return Category{}, ErrDuplicateName
		}
	}
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			return s.categories[i], nil
		}
	}
	return Category{}, ErrNotFound
}

// Delete removes the category. Unknown ids are a silent no-op.
func (s *CategoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return
		}
	}
}

// Get returns the category with the given id.
func (s *CategoryStore) Get(id string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// List returns the categories sorted by name.
func (s *CategoryStore) List() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
