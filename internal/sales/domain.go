package sales

import "time"

// Line is a snapshot of a sold cart line. Lines are copies taken at
// checkout time; later catalog or cart mutations never alter them.
type Line struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Qty      int     `json:"qty"`
}

// Transaction is a completed sale. Transactions are append-only: created
// once, never mutated or deleted.
type Transaction struct {
	ID             string    `json:"id"`
	Items          []Line    `json:"items"`
	Discount       float64   `json:"discount"`
	Total          float64   `json:"total"`
	Cost           float64   `json:"cost"`
	Profit         float64   `json:"profit"`
	PaymentMethod  string    `json:"payment_method"`
	AmountReceived float64   `json:"amount_received"`
	Change         float64   `json:"change"`
	Date           time.Time `json:"date"`
}

// Draft carries the fields of a transaction before the store assigns its
// identifier and timestamp.
type Draft struct {
	Items          []Line
	Discount       float64
	Total          float64
	Cost           float64
	Profit         float64
	PaymentMethod  string
	AmountReceived float64
	Change         float64
}

// Stats aggregates the transaction log.
type Stats struct {
	TotalSales       float64 `json:"total_sales"`
	TotalProfit      float64 `json:"total_profit"`
	TransactionCount int     `json:"transaction_count"`
	TodaySales       float64 `json:"today_sales"`
	TodayCount       int     `json:"today_count"`
}
