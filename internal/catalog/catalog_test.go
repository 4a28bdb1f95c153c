package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectoryLookups(t *testing.T) {
	dir := Default()
	require.Len(t, dir.Suppliers(), 3)
	require.Len(t, dir.Products(), 5)

	s, err := dir.Supplier("SUP002")
	require.NoError(t, err)
	require.Equal(t, "Global Distributors Inc", s.Name)

	s, err = dir.Supplier("#sup001")
	require.NoError(t, err)
	require.Equal(t, "ABC Manufacturing", s.Name)

	p, err := dir.Product("PRD001")
	require.NoError(t, err)
	require.Equal(t, "59.99", p.Price.StringFixed(2))

	_, err = dir.Product("PRD999")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, "SUP404", dir.SupplierName("SUP404"))
	require.Equal(t, "Metro Wholesale", dir.SupplierName("SUP003"))
}

func TestDirectoryReturnsCopies(t *testing.T) {
	dir := Default()
	list := dir.Products()
	list[0].Name = "changed"

	p, err := dir.Product("#PRD001")
	require.NoError(t, err)
	require.Equal(t, "Modern Desk Lamp", p.Name)
}
