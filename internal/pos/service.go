package pos

import (
	"fmt"

	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/sales"
)

// Service coordinates the cart against the catalog and the transaction log.
// It carries the availability and payment checks the cart store deliberately
// does not perform.
type Service struct {
	cart      *CartStore
	inventory *inventory.Store
	sales     *sales.Store
}

// NewService builds the POS service.
func NewService(cart *CartStore, inv *inventory.Store, salesStore *sales.Store) *Service {
	return &Service{cart: cart, inventory: inv, sales: salesStore}
}

// Cart returns the current cart snapshot.
func (s *Service) Cart() CartView {
	return s.cart.View()
}

// AddToCart puts one unit of the catalog item into the cart, merging with an
// existing line. Adding beyond the available stock is rejected.
func (s *Service) AddToCart(itemID string) (CartView, error) {
	item, ok := s.inventory.Get(itemID)
	if !ok {
		return CartView{}, inventory.ErrNotFound
	}
	if s.cart.Quantity(itemID)+1 > item.Qty {
		return CartView{}, fmt.Errorf("%w: %s", inventory.ErrInsufficientStock, item.Name)
	}
	s.cart.Add(CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Cost:     item.Cost,
	})
	return s.cart.View(), nil
}

// UpdateQuantity sets a line quantity; zero or less removes the line.
func (s *Service) UpdateQuantity(itemID string, qty int) (CartView, error) {
	if qty > 0 {
		item, ok := s.inventory.Get(itemID)
		if !ok {
			return CartView{}, inventory.ErrNotFound
		}
		if qty > item.Qty {
			return CartView{}, fmt.Errorf("%w: %s", inventory.ErrInsufficientStock, item.Name)
		}
	}
	s.cart.UpdateQuantity(itemID, qty)
	return s.cart.View(), nil
}

// RemoveFromCart deletes the line with the given item id.
func (s *Service) RemoveFromCart(itemID string) CartView {
	s.cart.Remove(itemID)
	return s.cart.View()
}

// SetDiscount validates and stores the discount percentage.
func (s *Service) SetDiscount(percent float64) (CartView, error) {
	if percent < 0 || percent > 100 {
		return CartView{}, ErrInvalidDiscount
	}
	s.cart.SetDiscount(percent)
	return s.cart.View(), nil
}

// SetCustomer attaches an optional customer reference.
func (s *Service) SetCustomer(customer string) CartView {
	s.cart.SetCustomer(customer)
	return s.cart.View()
}

// ClearCart resets the cart wholesale.
func (s *Service) ClearCart() {
	s.cart.Clear()
}

// CheckoutRequest describes the payment for the in-progress sale.
type CheckoutRequest struct {
	PaymentMethod  string  `json:"payment_method" validate:"required,oneof=cash card"`
	AmountReceived float64 `json:"amount_received" validate:"gte=0"`
}

// Checkout turns the cart into a recorded transaction: it validates payment
// and stock for every line, then applies the stock-out movements, appends
// the transaction and clears the cart. Nothing is applied unless every line
// passes validation, so a failed checkout leaves all stores untouched.
func (s *Service) Checkout(req CheckoutRequest) (sales.Transaction, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return sales.Transaction{}, ErrEmptyCart
	}
	totals := s.cart.Totals()

	received := totals.Total
	change := 0.0
	if req.PaymentMethod == PaymentCash {
		received = req.AmountReceived
		if received < totals.Total {
			return sales.Transaction{}, ErrInsufficientPayment
		}
		change = received - totals.Total
	}

	for _, line := range lines {
		item, ok := s.inventory.Get(line.ItemID)
		if !ok {
			return sales.Transaction{}, fmt.Errorf("%w: %s", inventory.ErrNotFound, line.Name)
		}
		if item.Qty < line.Qty {
			return sales.Transaction{}, fmt.Errorf("%w: %s", inventory.ErrInsufficientStock, line.Name)
		}
	}

	for _, line := range lines {
		s.inventory.AdjustStock(line.ItemID, line.Qty, inventory.DirectionOut)
	}

	items := make([]sales.Line, len(lines))
	for i, line := range lines {
		items[i] = sales.Line{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Category: line.Category,
			Price:    line.Price,
			Cost:     line.Cost,
			Qty:      line.Qty,
		}
	}

	tx := s.sales.Add(sales.Draft{
		Items:          items,
		Discount:       totals.DiscountAmount,
		Total:          totals.Total,
		Cost:           totals.Cost,
		Profit:         totals.Total - totals.Cost,
		PaymentMethod:  req.PaymentMethod,
		AmountReceived: received,
		Change:         change,
	})

	s.cart.Clear()
	return tx, nil
}
