package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the notification entries, most recent first.
type Store struct {
	mu     sync.RWMutex
	alerts []Alert
}

// NewStore returns an empty alert list.
func NewStore() *Store {
	return &Store{}
}

// Add assigns an id and creation time and prepends. New alerts are unread.
func (s *Store) Add(draft Draft) Alert {
	alert := Alert{
		ID:        uuid.NewString(),
		Kind:      draft.Kind,
		Message:   draft.Message,
		ItemID:    draft.ItemID,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append([]Alert{alert}, s.alerts...)
	return alert
}

// MarkRead flips the read flag. Unknown ids are a silent no-op.
func (s *Store) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Read = true
			return
		}
	}
}

// Clear drops every alert.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = nil
}

// List returns a copy of the alerts, most recent first.
func (s *Store) List() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// UnreadCount returns the number of unread alerts.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, alert := range s.alerts {
		if !alert.Read {
			count++
		}
	}
	return count
}
