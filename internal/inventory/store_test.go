package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateStatus(t *testing.T) {
	cases := []struct {
		name string
		qty  int
		min  int
		want Status
	}{
		{"zero qty is danger", 0, 0, StatusDanger},
		{"zero qty ignores min", 0, 5, StatusDanger},
		{"below min is warning", 3, 5, StatusWarning},
		{"at min is success", 5, 5, StatusSuccess},
		{"above min is success", 10, 5, StatusSuccess},
		{"no min is success", 1, 0, StatusSuccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CalculateStatus(tc.qty, tc.min))
		})
	}
}

func TestAddDefaultsAndRoundTrip(t *testing.T) {
	store := NewStore()

	item := store.Add(Draft{Name: "Espresso Beans", Qty: 8, Min: 3, Price: 12.5, Cost: 7})
	require.NotEmpty(t, item.ID)
	require.False(t, item.CreatedAt.IsZero())
	require.Equal(t, DefaultCategory, item.Category)
	require.Equal(t, StatusSuccess, item.Status)

	got, ok := store.Get(item.ID)
	require.True(t, ok)
	require.Equal(t, 8, got.Qty)
	require.Equal(t, 3, got.Min)
	require.Equal(t, 12.5, got.Price)
	require.Equal(t, 7.0, got.Cost)
}

func TestAddAllowsDuplicates(t *testing.T) {
	store := NewStore()
	a := store.Add(Draft{Name: "Widget", Barcode: "123"})
	b := store.Add(Draft{Name: "Widget", Barcode: "123"})
	require.NotEqual(t, a.ID, b.ID)
	require.Len(t, store.List(), 2)
}

func TestUpdateRecomputesStatus(t *testing.T) {
	store := NewStore()
	item := store.Add(Draft{Name: "Widget", Qty: 10, Min: 2})

	min := 20
	updated, ok := store.Update(item.ID, Patch{Min: &min})
	require.True(t, ok)
	require.Equal(t, StatusWarning, updated.Status)

	qty := 0
	updated, ok = store.Update(item.ID, Patch{Qty: &qty})
	require.True(t, ok)
	require.Equal(t, StatusDanger, updated.Status)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	store := NewStore()
	store.Add(Draft{Name: "Widget"})

	name := "Changed"
	_, ok := store.Update("missing", Patch{Name: &name})
	require.False(t, ok)
	require.Equal(t, "Widget", store.List()[0].Name)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	store := NewStore()
	item := store.Add(Draft{Name: "Widget", Qty: 5, Min: 2})

	got, ok := store.AdjustStock(item.ID, 10, DirectionOut)
	require.True(t, ok)
	require.Equal(t, 0, got.Qty)
	require.Equal(t, StatusDanger, got.Status)

	got, ok = store.AdjustStock(item.ID, 3, DirectionIn)
	require.True(t, ok)
	require.Equal(t, 3, got.Qty)
	require.Equal(t, StatusSuccess, got.Status)
}

func TestDeleteIsPermissive(t *testing.T) {
	store := NewStore()
	item := store.Add(Draft{Name: "Widget"})

	store.Delete("missing")
	require.Len(t, store.List(), 1)

	store.Delete(item.ID)
	require.Empty(t, store.List())
}

func TestLookups(t *testing.T) {
	store := NewStore()
	store.Add(Draft{Name: "Widget", Barcode: "4006381333931", SKU: "WGT-001"})

	_, ok := store.GetByBarcode("4006381333931")
	require.True(t, ok)
	_, ok = store.GetByBarcode("999")
	require.False(t, ok)

	_, ok = store.GetBySKU("wgt-001")
	require.True(t, ok)
	_, ok = store.GetBySKU("WGT-002")
	require.False(t, ok)
}

func TestSummaryAndCategories(t *testing.T) {
	store := NewStore()
	store.Add(Draft{Name: "Beans", Category: "Coffee", Qty: 10, Min: 2, Price: 12, Cost: 6})
	store.Add(Draft{Name: "Cups", Category: "Supplies", Qty: 1, Min: 5, Price: 0.5, Cost: 0.2})
	store.Add(Draft{Name: "Lids", Category: "Supplies", Qty: 0, Min: 5, Price: 0.2, Cost: 0.1})

	sum := store.Summary()
	require.Equal(t, 3, sum.TotalItems)
	require.Equal(t, 11, sum.TotalStock)
	require.InDelta(t, 10*12+1*0.5, sum.TotalValue, 1e-9)
	require.InDelta(t, 10*6+1*0.2, sum.TotalCost, 1e-9)
	require.Equal(t, 1, sum.LowStock)
	require.Equal(t, 1, sum.OutOfStock)
	require.Equal(t, 2, sum.Categories)

	require.Equal(t, []string{"Coffee", "Supplies"}, store.Categories())
	require.Len(t, store.ByCategory("Supplies"), 2)
	require.Len(t, store.LowStock(), 1)
	require.Len(t, store.OutOfStock(), 1)
}
