package console

import (
	"fmt"
	"math"
)

// DefaultLimit is the page size used when none is configured.
const DefaultLimit = 10

// ListFilters represents standard list page filters.
type ListFilters struct {
	Page   int
	Limit  int
	Search string
}

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// NewPagination computes pagination metadata. Pages past the end clamp to the
// last page.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = DefaultLimit
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Bounds returns the half-open slice range of the current page.
func (p Pagination) Bounds() (start, end int) {
	start = (p.Page - 1) * p.PerPage
	if start > p.Total {
		start = p.Total
	}
	end = start + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// Summary reads "Showing 1 to 10 of 24 orders".
func (p Pagination) Summary(noun string) string {
	start, end := p.Bounds()
	if p.Total == 0 {
		return fmt.Sprintf("Showing 0 of 0 %s", noun)
	}
	return fmt.Sprintf("Showing %d to %d of %d %s", start+1, end, p.Total, noun)
}

// Paginate returns the page of items selected by filters with its metadata.
func Paginate[T any](items []T, filters ListFilters) ([]T, Pagination) {
	p := NewPagination(filters.Page, filters.Limit, len(items))
	start, end := p.Bounds()
	return items[start:end], p
}
