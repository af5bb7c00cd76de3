package analytics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrymomot/erplite/pkg/catalog"
	"github.com/dmitrymomot/erplite/pkg/sanitizer"
)

// Unassigned labels products with an empty grouping key.
const Unassigned = "(none)"

// Group aggregates the products sharing a key.
type Group struct {
	Key       string  `json:"key"`
	Count     int     `json:"count"`
	Stock     int     `json:"stock"`
	AvgMargin float64 `json:"avg_margin"`
}

// ByCategory groups products by category.
func ByCategory(products []catalog.Product) []Group {
	return groupBy(products, func(p catalog.Product) string { return p.Category })
}

// ByBrand groups products by brand.
func ByBrand(products []catalog.Product) []Group {
	return groupBy(products, func(p catalog.Product) string { return p.Brand })
}

// groupBy returns groups ordered by count descending, then key ascending.
// AvgMargin is rounded to two decimals.
func groupBy(products []catalog.Product, key func(catalog.Product) string) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	margins := make([]float64, 0)

	for _, p := range products {
		k := strings.TrimSpace(key(p))
		if k == "" {
			k = Unassigned
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
			margins = append(margins, 0)
		}
		groups[i].Count++
		groups[i].Stock += p.Stock
		margins[i] += p.Margin()
	}

	for i := range groups {
		groups[i].AvgMargin = sanitizer.Money(margins[i] / float64(groups[i].Count))
	}

	slices.SortFunc(groups, func(a, b Group) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return groups
}
