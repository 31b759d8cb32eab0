package pos

import "sync"

// CartStore owns the in-progress sale. Like the other stores it is
// permissive: unknown line ids are silent no-ops and the discount is stored
// raw; validation happens in the Service.
type CartStore struct {
	mu       sync.RWMutex
	lines    []CartLine
	discount float64
	customer string
	taxRate  float64
}

// NewCartStore returns an empty cart applying the given tax rate.
func NewCartStore(taxRate float64) *CartStore {
	return &CartStore{taxRate: taxRate}
}

// Add merges the line into the cart: an existing line with the same item id
// gets its quantity incremented by one, otherwise the line is appended with
// quantity one.
func (c *CartStore) Add(line CartLine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == line.ItemID {
			c.lines[i].Qty++
			return
		}
	}
	line.Qty = 1
	c.lines = append(c.lines, line)
}

// Remove deletes the line with the given item id.
func (c *CartStore) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line quantity. A quantity of zero or less removes
// the line entirely.
func (c *CartStore) UpdateQuantity(itemID string, qty int) {
	if qty <= 0 {
		c.Remove(itemID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Qty = qty
			return
		}
	}
}

// SetDiscount stores the discount percentage as given.
func (c *CartStore) SetDiscount(percent float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = percent
}

// SetCustomer attaches an optional customer reference.
func (c *CartStore) SetCustomer(customer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = customer
}

// Clear resets lines, discount and customer together.
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.discount = 0
	c.customer = ""
}

// Lines returns a copy of the cart lines.
func (c *CartStore) Lines() []CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the cart quantity for the given item id.
func (c *CartStore) Quantity(itemID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, line := range c.lines {
		if line.ItemID == itemID {
			return line.Qty
		}
	}
	return 0
}

// Discount returns the stored discount percentage.
func (c *CartStore) Discount() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.discount
}

// Customer returns the attached customer reference.
func (c *CartStore) Customer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.customer
}

// Totals derives the cart figures: subtotal, tax on the subtotal, discount
// amount, grand total, total cost and item count.
func (c *CartStore) Totals() Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var t Totals
	for _, line := range c.lines {
		t.Subtotal += float64(line.Qty) * line.Price
		t.Cost += float64(line.Qty) * line.Cost
		t.ItemCount += line.Qty
	}
	t.Tax = t.Subtotal * c.taxRate
	t.DiscountAmount = t.Subtotal * (c.discount / 100)
	t.Total = t.Subtotal + t.Tax - t.DiscountAmount
	return t
}

// View returns the full cart snapshot.
func (c *CartStore) View() CartView {
	return CartView{
		Lines:    c.Lines(),
		Discount: c.Discount(),
		Customer: c.Customer(),
		Totals:   c.Totals(),
	}
}
