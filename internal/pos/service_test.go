package pos

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/sales"
)

func newTestService(t *testing.T) (*Service, *inventory.Store, *sales.Store) {
	t.Helper()
	inv := inventory.NewStore()
	salesStore := sales.NewStore()
	svc := NewService(NewCartStore(0.10), inv, salesStore)
	return svc, inv, salesStore
}

func TestAddToCartChecksAvailability(t *testing.T) {
	svc, inv, _ := newTestService(t)
	item := inv.Add(inventory.Draft{Name: "Beans", Qty: 2, Price: 10})

	_, err := svc.AddToCart(item.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(item.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(item.ID)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	_, err = svc.AddToCart("missing")
	require.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestCheckoutAppliesEverything(t *testing.T) {
	svc, inv, salesStore := newTestService(t)
	beans := inv.Add(inventory.Draft{Name: "Beans", Category: "Coffee", Qty: 5, Price: 50, Cost: 30})
	cups := inv.Add(inventory.Draft{Name: "Cups", Category: "Supplies", Qty: 10, Price: 1, Cost: 0.5})

	_, err := svc.AddToCart(beans.ID)
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(beans.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(cups.ID)
	require.NoError(t, err)
	_, err = svc.SetDiscount(10)
	require.NoError(t, err)

	// subtotal 101, tax 10.1, discount 10.1, total 101
	tx, err := svc.Checkout(CheckoutRequest{PaymentMethod: PaymentCash, AmountReceived: 150})
	require.NoError(t, err)
	require.InDelta(t, 101.0, tx.Total, 1e-9)
	require.InDelta(t, 60.5, tx.Cost, 1e-9)
	require.InDelta(t, 40.5, tx.Profit, 1e-9)
	require.InDelta(t, 49.0, tx.Change, 1e-9)
	require.Len(t, tx.Items, 2)

	// stock reduced
	got, ok := inv.Get(beans.ID)
	require.True(t, ok)
	require.Equal(t, 3, got.Qty)

	// transaction recorded, cart cleared
	require.Equal(t, 1, salesStore.Count())
	require.Empty(t, svc.Cart().Lines)
	require.Zero(t, svc.Cart().Discount)
}

func TestCheckoutSnapshotUnaffectedByLaterMutations(t *testing.T) {
	svc, inv, salesStore := newTestService(t)
	item := inv.Add(inventory.Draft{Name: "Beans", Qty: 5, Price: 10, Cost: 4})

	_, err := svc.AddToCart(item.ID)
	require.NoError(t, err)
	_, err = svc.Checkout(CheckoutRequest{PaymentMethod: PaymentCard})
	require.NoError(t, err)

	// rewrite the catalog afterwards
	newPrice := 999.0
	_, ok := inv.Update(item.ID, inventory.Patch{Price: &newPrice})
	require.True(t, ok)
	inv.Delete(item.ID)

	recorded := salesStore.List()[0]
	require.Equal(t, 10.0, recorded.Items[0].Price)
}

func TestCheckoutFailuresLeaveStateUntouched(t *testing.T) {
	svc, inv, salesStore := newTestService(t)

	_, err := svc.Checkout(CheckoutRequest{PaymentMethod: PaymentCash, AmountReceived: 100})
	require.ErrorIs(t, err, ErrEmptyCart)

	item := inv.Add(inventory.Draft{Name: "Beans", Qty: 3, Price: 10})
	_, err = svc.AddToCart(item.ID)
	require.NoError(t, err)

	// cash below total
	_, err = svc.Checkout(CheckoutRequest{PaymentMethod: PaymentCash, AmountReceived: 1})
	require.ErrorIs(t, err, ErrInsufficientPayment)

	// stock drained behind the cart's back
	inv.AdjustStock(item.ID, 3, inventory.DirectionOut)
	_, err = svc.Checkout(CheckoutRequest{PaymentMethod: PaymentCash, AmountReceived: 100})
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	require.Zero(t, salesStore.Count())
	require.Len(t, svc.Cart().Lines, 1)
}

func TestSetDiscountValidatesRange(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.SetDiscount(101)
	require.ErrorIs(t, err, ErrInvalidDiscount)
	_, err = svc.SetDiscount(-1)
	require.ErrorIs(t, err, ErrInvalidDiscount)
	view, err := svc.SetDiscount(15)
	require.NoError(t, err)
	require.Equal(t, 15.0, view.Discount)
}
