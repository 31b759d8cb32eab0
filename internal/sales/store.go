package sales

import (
	"fmt"
	"sync"
	"time"
)

// Store owns the append-only transaction log, most recent first.
type Store struct {
	mu           sync.RWMutex
	transactions []Transaction
	lastStamp    int64
	now          func() time.Time
}

// NewStore returns an empty transaction log.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add assigns an id and date, deep-copies the line snapshot and prepends.
// Identifiers use the TXN-<epoch millis> format; a monotonic guard keeps
// them distinct when two sales land in the same millisecond.
func (s *Store) Add(draft Draft) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	stamp := now.UnixMilli()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	s.lastStamp = stamp

	items := make([]Line, len(draft.Items))
	copy(items, draft.Items)

	tx := Transaction{
		ID:             fmt.Sprintf("TXN-%d", stamp),
		Items:          items,
		Discount:       draft.Discount,
		Total:          draft.Total,
		Cost:           draft.Cost,
		Profit:         draft.Profit,
		PaymentMethod:  draft.PaymentMethod,
		AmountReceived: draft.AmountReceived,
		Change:         draft.Change,
		Date:           now,
	}
	s.transactions = append([]Transaction{tx}, s.transactions...)
	return tx
}

// List returns a copy of the log, most recent first.
func (s *Store) List() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// TodayTransactions returns the transactions recorded on the current
// calendar day (UTC).
func (s *Store) TodayTransactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	today := s.now().UTC()
	var out []Transaction
	for _, tx := range s.transactions {
		if sameDay(tx.Date, today) {
			out = append(out, tx)
		}
	}
	return out
}

// TodaySales sums the totals of today's transactions.
func (s *Store) TodaySales() float64 {
	var sum float64
	for _, tx := range s.TodayTransactions() {
		sum += tx.Total
	}
	return sum
}

// TotalSales sums all transaction totals.
func (s *Store) TotalSales() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, tx := range s.transactions {
		sum += tx.Total
	}
	return sum
}

// TotalProfit sums total minus cost per transaction, falling back to the
// recorded profit when no cost was captured.
func (s *Store) TotalProfit() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, tx := range s.transactions {
		if tx.Cost == 0 && tx.Profit != 0 {
			sum += tx.Profit
			continue
		}
		sum += tx.Total - tx.Cost
	}
	return sum
}

// Count returns the number of recorded transactions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// SalesByCategory sums revenue per category over the snapshotted lines.
func (s *Store) SalesByCategory() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64)
	for _, tx := range s.transactions {
		for _, line := range tx.Items {
			cat := line.Category
			if cat == "" {
				cat = "Other"
			}
			out[cat] += float64(line.Qty) * line.Price
		}
	}
	return out
}

// Stats aggregates the log into a single snapshot.
func (s *Store) Stats() Stats {
	today := s.TodayTransactions()
	stats := Stats{
		TotalSales:       s.TotalSales(),
		TotalProfit:      s.TotalProfit(),
		TransactionCount: s.Count(),
		TodayCount:       len(today),
	}
	for _, tx := range today {
		stats.TodaySales += tx.Total
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
