package pos

import "errors"

// CartLine is a product entry in the in-progress sale. Qty is the quantity
// in the cart, independent of the catalog stock level.
type CartLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Qty      int     `json:"qty"`
}

// Totals holds the derived cart figures. Tax applies to the subtotal; the
// discount is a percentage of the subtotal.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
	Cost           float64 `json:"cost"`
	ItemCount      int     `json:"item_count"`
}

// CartView is the JSON snapshot of the cart state.
type CartView struct {
	Lines    []CartLine `json:"lines"`
	Discount float64    `json:"discount"`
	Customer string     `json:"customer,omitempty"`
	Totals   Totals     `json:"totals"`
}

// Payment methods accepted at checkout.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

var (
	// ErrEmptyCart indicates checkout on an empty cart.
	ErrEmptyCart = errors.New("pos: cart is empty")
	// ErrInsufficientPayment indicates cash received below the total.
	ErrInsufficientPayment = errors.New("pos: amount received is below the total")
	// ErrInvalidDiscount indicates a discount outside 0-100.
	ErrInvalidDiscount = errors.New("pos: discount must be between 0 and 100")
)
