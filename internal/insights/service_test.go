package insights

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/orders"
	"github.com/stockpilot/stockpilot/internal/sales"
)

func TestDashboard(t *testing.T) {
	inv := inventory.NewStore()
	ord := orders.NewStore()
	sal := sales.NewStore()
	svc := NewService(inv, ord, sal)

	inv.Add(inventory.Draft{Name: "Beans", Category: "Coffee", Price: 12, Qty: 10, Min: 2})
	inv.Add(inventory.Draft{Name: "Cups", Category: "Supplies", Price: 0.5, Qty: 1, Min: 5})
	inv.Add(inventory.Draft{Name: "Lids", Category: "Supplies", Price: 0.25, Qty: 0, Min: 5})

	ord.Add(orders.Draft{
		Supplier: "Acme",
		Lines:    []orders.Line{{ItemID: "x", Name: "Beans", Qty: 5, UnitPrice: 8}},
	})

	sal.Add(sales.Draft{
		Items:  []sales.Line{{Name: "Beans", Category: "Coffee", Price: 12, Qty: 2}},
		Total:  24,
		Cost:   16,
		Profit: 8,
	})

	d := svc.Dashboard()
	require.Equal(t, 3, d.TotalItems)
	require.Equal(t, 11, d.StockUnits)
	require.InDelta(t, 120.5, d.StockValue, 1e-9)
	require.Equal(t, 1, d.LowStockCount)
	require.Equal(t, 1, d.OutOfStockCount)
	require.Equal(t, 1, d.PendingOrders)
	require.InDelta(t, 40, d.PendingOrdersValue, 1e-9)
	require.InDelta(t, 24, d.TotalSales, 1e-9)
	require.InDelta(t, 8, d.TotalProfit, 1e-9)
	require.Equal(t, 1, d.TransactionCount)
	require.InDelta(t, 24, d.AvgTransactionValue, 1e-9)
}

func TestDashboardEmptyStores(t *testing.T) {
	svc := NewService(inventory.NewStore(), orders.NewStore(), sales.NewStore())
	d := svc.Dashboard()
	require.Zero(t, d.TotalItems)
	require.Zero(t, d.AvgTransactionValue)
}

func TestCategoriesMergesStockAndSales(t *testing.T) {
	inv := inventory.NewStore()
	sal := sales.NewStore()
	svc := NewService(inv, orders.NewStore(), sal)

	inv.Add(inventory.Draft{Name: "Beans", Category: "Coffee", Price: 10, Qty: 3})
	inv.Add(inventory.Draft{Name: "Grinder", Category: "Equipment", Price: 100, Qty: 1})

	sal.Add(sales.Draft{
		Items: []sales.Line{
			{Name: "Beans", Category: "Coffee", Price: 10, Qty: 2},
			{Name: "Mystery", Price: 5, Qty: 1},
		},
		Total: 25,
	})

	rows := svc.Categories()
	require.Len(t, rows, 3)

	byName := map[string]CategoryBreakdown{}
	for _, row := range rows {
		byName[row.Category] = row
	}

	coffee := byName["Coffee"]
	require.Equal(t, 1, coffee.ItemCount)
	require.InDelta(t, 30, coffee.StockValue, 1e-9)
	require.InDelta(t, 20, coffee.Sales, 1e-9)

	// equipment has stock but no sales
	require.Zero(t, byName["Equipment"].Sales)

	// the uncategorized sale line lands under Other
	require.InDelta(t, 5, byName["Other"].Sales, 1e-9)
	require.Zero(t, byName["Other"].ItemCount)
}
