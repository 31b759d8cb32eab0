package insights

import (
	"sort"

	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/orders"
	"github.com/stockpilot/stockpilot/internal/sales"
)

// Dashboard aggregates the headline numbers for the storefront overview.
type Dashboard struct {
	TotalItems          int     `json:"total_items"`
	StockUnits          int     `json:"stock_units"`
	StockValue          float64 `json:"stock_value"`
	LowStockCount       int     `json:"low_stock_count"`
	OutOfStockCount     int     `json:"out_of_stock_count"`
	PendingOrders       int     `json:"pending_orders"`
	PendingOrdersValue  float64 `json:"pending_orders_value"`
	TodaySales          float64 `json:"today_sales"`
	TodayTransactions   int     `json:"today_transactions"`
	TotalSales          float64 `json:"total_sales"`
	TotalProfit         float64 `json:"total_profit"`
	TransactionCount    int     `json:"transaction_count"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
}

// CategoryBreakdown reports per-category stock and sales figures.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	ItemCount  int     `json:"item_count"`
	StockUnits int     `json:"stock_units"`
	StockValue float64 `json:"stock_value"`
	Sales      float64 `json:"sales"`
}

// Service derives read-only aggregates across the domain stores.
type Service struct {
	inventory *inventory.Store
	orders    *orders.Store
	sales     *sales.Store
}

// NewService builds the insights service.
func NewService(inv *inventory.Store, ord *orders.Store, sal *sales.Store) *Service {
	return &Service{inventory: inv, orders: ord, sales: sal}
}

// Dashboard computes the overview numbers from current store state.
func (s *Service) Dashboard() Dashboard {
	summary := s.inventory.Summary()
	stats := s.sales.Stats()

	var avg float64
	if stats.TransactionCount > 0 {
		avg = stats.TotalSales / float64(stats.TransactionCount)
	}

	pending := s.orders.Pending()
	var pendingValue float64
	for _, o := range pending {
		pendingValue += o.Total
	}

	return Dashboard{
		TotalItems:          summary.TotalItems,
		StockUnits:          summary.TotalStock,
		StockValue:          summary.TotalValue,
		LowStockCount:       summary.LowStock,
		OutOfStockCount:     summary.OutOfStock,
		PendingOrders:       len(pending),
		PendingOrdersValue:  pendingValue,
		TodaySales:          stats.TodaySales,
		TodayTransactions:   stats.TodayCount,
		TotalSales:          stats.TotalSales,
		TotalProfit:         stats.TotalProfit,
		TransactionCount:    stats.TransactionCount,
		AvgTransactionValue: avg,
	}
}

// Categories merges the per-category stock position with realized sales,
// sorted by category name. Categories that only appear on one side still
// get a row.
func (s *Service) Categories() []CategoryBreakdown {
	rows := make(map[string]*CategoryBreakdown)
	get := func(name string) *CategoryBreakdown {
		if row, ok := rows[name]; ok {
			return row
		}
		row := &CategoryBreakdown{Category: name}
		rows[name] = row
		return row
	}

	for _, item := range s.inventory.List() {
		row := get(item.Category)
		row.ItemCount++
		row.StockUnits += item.Qty
		row.StockValue += float64(item.Qty) * item.Price
	}
	for category, total := range s.sales.SalesByCategory() {
		get(category).Sales = total
	}

	out := make([]CategoryBreakdown, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
