package masterdata

// SupplierRequest is the payload for creating or updating a supplier.
type SupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
