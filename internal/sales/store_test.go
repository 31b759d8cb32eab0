package sales

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddIsOrderPreservingWithDistinctIDs(t *testing.T) {
	store := NewStore()
	// freeze the clock so every Add lands in the same millisecond
	frozen := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return frozen }

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		tx := store.Add(Draft{Total: float64(i + 1)})
		require.True(t, strings.HasPrefix(tx.ID, "TXN-"))
		_, dup := seen[tx.ID]
		require.False(t, dup, "duplicate id %s", tx.ID)
		seen[tx.ID] = struct{}{}
	}

	list := store.List()
	require.Len(t, list, 5)
	// most recent first
	require.Equal(t, 5.0, list[0].Total)
	require.Equal(t, 1.0, list[4].Total)
}

func TestSnapshotIsImmutable(t *testing.T) {
	store := NewStore()
	lines := []Line{{ItemID: "a", Name: "Beans", Category: "Coffee", Price: 10, Qty: 2}}
	tx := store.Add(Draft{Items: lines, Total: 20})

	// mutating the caller's slice must not reach the stored snapshot
	lines[0].Qty = 99
	lines[0].Price = 0

	got := store.List()[0]
	require.Equal(t, tx.ID, got.ID)
	require.Equal(t, 2, got.Items[0].Qty)
	require.Equal(t, 10.0, got.Items[0].Price)
}

func TestTodayFiltering(t *testing.T) {
	store := NewStore()
	day := time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)
	store.now = func() time.Time { return day }
	store.Add(Draft{Total: 40})

	nextDay := day.Add(time.Hour)
	store.now = func() time.Time { return nextDay }
	store.Add(Draft{Total: 60})

	today := store.TodayTransactions()
	require.Len(t, today, 1)
	require.Equal(t, 60.0, today[0].Total)
	require.Equal(t, 60.0, store.TodaySales())
	require.Equal(t, 100.0, store.TotalSales())
	require.Equal(t, 2, store.Count())
}

func TestTotalProfitFallsBackToStoredProfit(t *testing.T) {
	store := NewStore()
	store.Add(Draft{Total: 100, Cost: 60})
	store.Add(Draft{Total: 50, Profit: 20})

	require.InDelta(t, 60.0, store.TotalProfit(), 1e-9)
}

func TestSalesByCategory(t *testing.T) {
	store := NewStore()
	store.Add(Draft{Items: []Line{
		{ItemID: "a", Category: "Coffee", Price: 10, Qty: 2},
		{ItemID: "b", Category: "", Price: 5, Qty: 1},
	}})
	store.Add(Draft{Items: []Line{
		{ItemID: "a", Category: "Coffee", Price: 10, Qty: 1},
	}})

	byCat := store.SalesByCategory()
	require.InDelta(t, 30.0, byCat["Coffee"], 1e-9)
	require.InDelta(t, 5.0, byCat["Other"], 1e-9)
}
