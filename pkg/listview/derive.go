package listview

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// FieldFunc looks a named field up on an item. ok is false when the item has no such field.
type FieldFunc[T any] func(item T, name string) (value any, ok bool)

// Record is implemented by domain types exposing their fields by name.
type Record interface {
	Field(name string) (any, bool)
}

// DeriveFunc filters, sorts and paginates items in a fixed order: free-text search,
// field filters, stable sort, page slice. items is never modified.
//
// TotalCount is the number of matching items before pagination. A page outside
// [1, TotalPages] yields no items; callers clamp with ClampPage when they want to.
func DeriveFunc[T any](items []T, p Params, field FieldFunc[T]) Result[T] {
	matched := filter(items, p, field)
	sortItems(matched, p, field)
	return paginate(matched, p)
}

// Derive is DeriveFunc for map-shaped records.
func Derive[R ~map[string]any](items []R, p Params) Result[R] {
	return DeriveFunc(items, p, func(item R, name string) (any, bool) {
		v, ok := item[name]
		return v, ok
	})
}

// DeriveRecords is DeriveFunc for types implementing Record.
func DeriveRecords[T Record](items []T, p Params) Result[T] {
	return DeriveFunc(items, p, func(item T, name string) (any, bool) {
		return item.Field(name)
	})
}

func filter[T any](items []T, p Params, field FieldFunc[T]) []T {
	// Casers keep state, so each call gets its own.
	folder := cases.Fold()
	needle := folder.String(p.Search)

	filters := make(map[string]string, len(p.Filters))
	for name, want := range p.Filters {
		if want != "" {
			filters[name] = want
		}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(item, needle, p.SearchFields, field, folder) {
			continue
		}
		if !matchesFilters(item, filters, field) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, needle string, fields []string, field FieldFunc[T], folder cases.Caser) bool {
	for _, name := range fields {
		v, ok := field(item, name)
		if !ok || v == nil {
			continue
		}
		if strings.Contains(folder.String(text(v)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string, field FieldFunc[T]) bool {
	for name, want := range filters {
		v, ok := field(item, name)
		if !ok || v == nil || text(v) != want {
			return false
		}
	}
	return true
}

type keyed[T any] struct {
	item    T
	key     any
	present bool
}

func sortItems[T any](items []T, p Params, field FieldFunc[T]) {
	if p.SortField == "" || len(items) < 2 {
		return
	}

	entries := make([]keyed[T], len(items))
	for i, item := range items {
		v, ok := field(item, p.SortField)
		entries[i] = keyed[T]{item: item, key: v, present: ok && v != nil}
	}

	slices.SortStableFunc(entries, func(a, b keyed[T]) int {
		// Missing keys sink to the end in both directions.
		switch {
		case !a.present && !b.present:
			return 0
		case !a.present:
			return 1
		case !b.present:
			return -1
		}
		c := compareValues(a.key, b.key)
		if p.SortDir == Desc {
			return -c
		}
		return c
	})

	for i := range entries {
		items[i] = entries[i].item
	}
}

func paginate[T any](items []T, p Params) Result[T] {
	res := Result[T]{
		Items:       []T{},
		TotalCount:  len(items),
		CurrentPage: p.Page,
	}

	if p.PageSize <= 0 {
		res.TotalPages = 1
		if p.Page == 1 {
			res.Items = items
		}
		return res
	}

	res.TotalPages = (len(items) + p.PageSize - 1) / p.PageSize
	if p.Page < 1 || p.Page > res.TotalPages {
		return res
	}

	start := (p.Page - 1) * p.PageSize
	end := min(start+p.PageSize, len(items))
	res.Items = slices.Clip(items[start:end])
	return res
}
