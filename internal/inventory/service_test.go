package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceCreateRequiresName(t *testing.T) {
	svc := NewService(NewStore())
	_, err := svc.Create(CreateItemRequest{Name: "   "})
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestServiceAdjustRejectsOverdraw(t *testing.T) {
	svc := NewService(NewStore())
	item, err := svc.Create(CreateItemRequest{Name: "Widget", Qty: 5})
	require.NoError(t, err)

	_, err = svc.Adjust(item.ID, AdjustStockRequest{Quantity: 10, Direction: "out"})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// the store itself was untouched
	got, getErr := svc.Get(item.ID)
	require.NoError(t, getErr)
	require.Equal(t, 5, got.Qty)
}

func TestServiceAdjustValidatesInput(t *testing.T) {
	svc := NewService(NewStore())
	item, err := svc.Create(CreateItemRequest{Name: "Widget", Qty: 5})
	require.NoError(t, err)

	_, err = svc.Adjust(item.ID, AdjustStockRequest{Quantity: 0, Direction: "in"})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Adjust(item.ID, AdjustStockRequest{Quantity: 1, Direction: "sideways"})
	require.ErrorIs(t, err, ErrInvalidDirection)

	_, err = svc.Adjust("missing", AdjustStockRequest{Quantity: 1, Direction: "in"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceLookupPrefersBarcode(t *testing.T) {
	svc := NewService(NewStore())
	_, err := svc.Create(CreateItemRequest{Name: "ByCode", Barcode: "CODE-1"})
	require.NoError(t, err)
	bySKU, err := svc.Create(CreateItemRequest{Name: "BySKU", SKU: "code-1"})
	require.NoError(t, err)

	found, err := svc.Lookup("CODE-1")
	require.NoError(t, err)
	require.Equal(t, "ByCode", found.Name)

	found, err = svc.Lookup("COde-1")
	require.NoError(t, err)
	require.Equal(t, bySKU.ID, found.ID)

	_, err = svc.Lookup("nope")
	require.ErrorIs(t, err, ErrNotFound)
}
