package orders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentialNumbering(t *testing.T) {
	store := NewStore()
	first := store.Add(Draft{Supplier: "Acme"})
	second := store.Add(Draft{Supplier: "Acme"})

	require.Equal(t, "PO-1001", first.ID)
	require.Equal(t, "PO-1002", second.ID)

	// most recent first
	list := store.List()
	require.Equal(t, "PO-1002", list[0].ID)
}

func TestTotalComputedFromLines(t *testing.T) {
	store := NewStore()
	order := store.Add(Draft{Supplier: "Acme", Lines: []Line{
		{Name: "Beans", Qty: 10, UnitPrice: 7},
		{Name: "Cups", Qty: 100, UnitPrice: 0.2},
	}})
	require.InDelta(t, 90.0, order.Total, 1e-9)

	explicit := store.Add(Draft{Supplier: "Acme", Total: 42})
	require.InDelta(t, 42.0, explicit.Total, 1e-9)

	require.InDelta(t, 132.0, store.TotalValue(), 1e-9)
}

func TestUpdateStatusStampsUpdatedAt(t *testing.T) {
	store := NewStore()
	order := store.Add(Draft{Supplier: "Acme"})
	require.Nil(t, order.UpdatedAt)
	require.Equal(t, StatusPending, order.Status)

	updated, ok := store.UpdateStatus(order.ID, StatusReceived)
	require.True(t, ok)
	require.Equal(t, StatusReceived, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	_, ok = store.UpdateStatus("PO-9999", StatusReceived)
	require.False(t, ok)
}

func TestPartitions(t *testing.T) {
	store := NewStore()
	a := store.Add(Draft{Supplier: "Acme"})
	store.Add(Draft{Supplier: "Beta"})
	c := store.Add(Draft{Supplier: "Gamma"})

	store.UpdateStatus(a.ID, StatusReceived)
	store.UpdateStatus(c.ID, StatusCancelled)

	require.Len(t, store.Received(), 1)
	require.Len(t, store.Pending(), 2) // cancelled still counts as not-received
}
