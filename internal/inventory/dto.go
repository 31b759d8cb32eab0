package inventory

// CreateItemRequest is the payload for adding a catalog item.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Barcode     string  `json:"barcode,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Qty         int     `json:"qty" validate:"gte=0"`
	Min         int     `json:"min" validate:"gte=0"`
	Location    string  `json:"location,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateItemRequest carries optional field updates. Absent fields are ignored.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Barcode     *string  `json:"barcode,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost        *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Qty         *int     `json:"qty,omitempty" validate:"omitempty,gte=0"`
	Min         *int     `json:"min,omitempty" validate:"omitempty,gte=0"`
	Location    *string  `json:"location,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// AdjustStockRequest describes a stock movement.
type AdjustStockRequest struct {
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Direction string `json:"direction" validate:"required,oneof=in out"`
}
