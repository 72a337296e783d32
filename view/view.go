// Package view computes the visible page of a resource list: case-insensitive
// search on the display name, a stable sort, and fixed-size pagination. It is
// a pure projection of (list, search, sort, page) and holds no list of its
// own, so it can never go stale independently of its inputs.
package view

import (
	"sort"
	"strings"
	"time"
)

type SortKey string

const (
	SortLatest       SortKey = "latest"
	SortPriceLowHigh SortKey = "priceLowHigh"
	SortPriceHighLow SortKey = "priceHighLow"
)

const DefaultPageSize = 8

// Fields are the accessors a view needs from its entity. Price and CreatedAt
// may be nil for resources without them; the related sorts then keep input
// order.
type Fields[T any] struct {
	Name      func(T) string
	Price     func(T) float64
	CreatedAt func(T) time.Time
}

type Page[T any] struct {
	Items      []T
	TotalItems int
	TotalPages int
	Current    int
}

type View[T any] struct {
	Search   string
	Sort     SortKey
	PageSize int

	fields Fields[T]
	page   int
}

func New[T any](fields Fields[T]) *View[T] {
	return &View[T]{
		Sort:     SortLatest,
		PageSize: DefaultPageSize,
		fields:   fields,
		page:     1,
	}
}

// SetPage moves to page n. A page outside [1, totalPages] for the current
// filtered list is a no-op, current page unchanged.
func (v *View[T]) SetPage(n int, items []T) {
	total := v.totalPages(len(v.filterSort(items)))
	if n >= 1 && n <= total {
		v.page = n
	}
}

func (v *View[T]) CurrentPage() int {
	return v.page
}

// Page projects the canonical list into the slice to render.
func (v *View[T]) Page(items []T) Page[T] {
	filtered := v.filterSort(items)
	total := len(filtered)
	pages := v.totalPages(total)

	start := (v.page - 1) * v.PageSize
	end := start + v.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      filtered[start:end],
		TotalItems: total,
		TotalPages: pages,
		Current:    v.page,
	}
}

func (v *View[T]) totalPages(n int) int {
	if v.PageSize <= 0 {
		return 0
	}
	return (n + v.PageSize - 1) / v.PageSize
}

func (v *View[T]) filterSort(items []T) []T {
	out := make([]T, 0, len(items))
	term := strings.ToLower(v.Search)
	for _, item := range items {
		if term == "" || v.fields.Name == nil ||
			strings.Contains(strings.ToLower(v.fields.Name(item)), term) {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch v.Sort {
		case SortPriceLowHigh:
			if v.fields.Price != nil {
				return v.fields.Price(out[i]) < v.fields.Price(out[j])
			}
		case SortPriceHighLow:
			if v.fields.Price != nil {
				return v.fields.Price(out[i]) > v.fields.Price(out[j])
			}
		default:
			if v.fields.CreatedAt != nil {
				a, b := v.fields.CreatedAt(out[i]), v.fields.CreatedAt(out[j])
				if !a.IsZero() && !b.IsZero() {
					return a.After(b)
				}
			}
		}
		return false
	})
	return out
}
