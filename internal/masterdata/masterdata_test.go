package masterdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return NewService(NewSupplierStore(), NewCategoryStore())
}

func TestSupplierLifecycle(t *testing.T) {
	svc := newService()

	created, err := svc.CreateSupplier(SupplierDraft{Name: "Acme Beans", Email: "sales@acme.test"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := svc.UpdateSupplier(created.ID, SupplierDraft{Name: "Acme Beans Co", Phone: "555-0101"})
	require.NoError(t, err)
	require.Equal(t, "Acme Beans Co", updated.Name)
	require.True(t, updated.UpdatedAt.After(created.CreatedAt) || updated.UpdatedAt.Equal(created.CreatedAt))

	_, err = svc.UpdateSupplier("missing", SupplierDraft{Name: "X"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateSupplier(SupplierDraft{Name: "   "})
	require.ErrorIs(t, err, ErrNameRequired)

	svc.DeleteSupplier(created.ID)
	require.Empty(t, svc.Suppliers().List())
	// deleting again is a no-op
	svc.DeleteSupplier(created.ID)
}

func TestSuppliersSortedByName(t *testing.T) {
	svc := newService()
	_, err := svc.CreateSupplier(SupplierDraft{Name: "zeta"})
	require.NoError(t, err)
	_, err = svc.CreateSupplier(SupplierDraft{Name: "Alpha"})
	require.NoError(t, err)

	list := svc.Suppliers().List()
	require.Equal(t, "Alpha", list[0].Name)
	require.Equal(t, "zeta", list[1].Name)
}

func TestCategoryUniqueness(t *testing.T) {
	svc := newService()

	coffee, err := svc.CreateCategory("Coffee")
	require.NoError(t, err)

	_, err = svc.CreateCategory("coffee")
	require.ErrorIs(t, err, ErrDuplicateName)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)

	_, err = svc.RenameCategory(tea.ID, "COFFEE")
	require.ErrorIs(t, err, ErrDuplicateName)

	// renaming to itself with different casing is fine
	renamed, err := svc.RenameCategory(coffee.ID, "COFFEE")
	require.NoError(t, err)
	require.Equal(t, "COFFEE", renamed.Name)

	_, err = svc.RenameCategory("missing", "Juice")
	require.ErrorIs(t, err, ErrNotFound)
}
