package orders

// CreateOrderRequest is the payload for recording a purchase order.
type CreateOrderRequest struct {
	Supplier string                   `json:"supplier" validate:"required"`
	Lines    []CreateOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	Total    float64                  `json:"total" validate:"gte=0"`
}

// CreateOrderLineRequest is a single requested product.
type CreateOrderLineRequest struct {
	ItemID    string  `json:"item_id,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Qty       int     `json:"qty" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// UpdateStatusRequest moves an order to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending received cancelled"`
}
