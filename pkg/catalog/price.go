package catalog

import (
	"slices"
	"time"
)

// PriceEntry is one recorded sale price of a product.
type PriceEntry struct {
	ProductID  string    `json:"product_id" yaml:"product_id"`
	Price      float64   `json:"price" yaml:"price"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

func (e PriceEntry) Field(name string) (any, bool) {
	switch name {
	case "product_id":
		return e.ProductID, true
	case "price":
		return e.Price, true
	case "recorded_at":
		return e.RecordedAt, true
	}
	return nil, false
}

// SortPriceHistory returns a copy of entries ordered newest first. Entries
// recorded at the same instant keep their relative order.
func SortPriceHistory(entries []PriceEntry) []PriceEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b PriceEntry) int {
		return b.RecordedAt.Compare(a.RecordedAt)
	})
	return out
}
