package scan

import "sync"

// DefaultHistoryLimit bounds the scan history when no limit is configured.
const DefaultHistoryLimit = 50

// Store keeps the last scanned entry and a bounded history, most recent
// first. Once the limit is reached the oldest entry is evicted.
type Store struct {
	mu      sync.RWMutex
	limit   int
	last    *Entry
	history []Entry
}

// NewStore builds a Store bounded at limit entries. Non-positive limits
// fall back to DefaultHistoryLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Store{limit: limit}
}

// Record stores the entry as the last scan and prepends it to the history.
func (s *Store) Record(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &entry
	s.history = append([]Entry{entry}, s.history...)
	if len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}
}

// Last returns the most recent scan, or false when nothing was scanned.
func (s *Store) Last() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Entry{}, false
	}
	return *s.last, true
}

// SetLast replaces the most recent scan snapshot without touching history.
func (s *Store) SetLast(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &entry
}

// History returns a copy of the scan history, most recent first.
func (s *Store) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Clear drops the history and the last scan.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	s.history = nil
}
