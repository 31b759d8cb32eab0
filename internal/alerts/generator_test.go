package alerts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/inventory"
)

func TestSweepEmitsOncePerStatusChange(t *testing.T) {
	inv := inventory.NewStore()
	store := NewStore()
	gen := NewGenerator(store, inv)

	ok := inv.Add(inventory.Draft{Name: "Beans", Qty: 10, Min: 2})
	low := inv.Add(inventory.Draft{Name: "Cups", Qty: 1, Min: 5})
	inv.Add(inventory.Draft{Name: "Lids", Qty: 0, Min: 5})

	require.Equal(t, 2, gen.Sweep())
	alerts := store.List()
	require.Len(t, alerts, 2)

	kinds := map[Kind]bool{}
	for _, a := range alerts {
		kinds[a.Kind] = true
	}
	require.True(t, kinds[KindLowStock])
	require.True(t, kinds[KindOutOfStock])

	// unchanged catalog stays quiet
	require.Zero(t, gen.Sweep())

	// draining the healthy item fires again
	inv.AdjustStock(ok.ID, 10, inventory.DirectionOut)
	require.Equal(t, 1, gen.Sweep())

	// recovery then relapse alerts once more
	inv.AdjustStock(low.ID, 10, inventory.DirectionIn)
	require.Zero(t, gen.Sweep())
	inv.AdjustStock(low.ID, 11, inventory.DirectionOut)
	require.Equal(t, 1, gen.Sweep())
}
