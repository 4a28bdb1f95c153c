package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(0, 0, 24)
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.PerPage)
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, "Showing 1 to 10 of 24 orders", p.Summary("orders"))

	p = NewPagination(9, 10, 24)
	require.Equal(t, 3, p.Page)
	require.Equal(t, "Showing 21 to 24 of 24 orders", p.Summary("orders"))

	p = NewPagination(2, 10, 0)
	require.Equal(t, 0, p.TotalPages)
	require.Equal(t, "Showing 0 of 0 bills", p.Summary("bills"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	page, p := Paginate(items, ListFilters{Page: 2, Limit: 2})
	require.Equal(t, []int{3, 4}, page)
	require.Equal(t, 3, p.TotalPages)

	page, _ = Paginate(items, ListFilters{Page: 3, Limit: 2})
	require.Equal(t, []int{5}, page)

	page, _ = Paginate([]int{}, ListFilters{Page: 1, Limit: 2})
	require.Empty(t, page)
}
