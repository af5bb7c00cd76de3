package analytics

import (
	"time"

	"github.com/dmitrymomot/erplite/pkg/catalog"
	"github.com/dmitrymomot/erplite/pkg/sanitizer"
)

// Change summarises a price history from its oldest to its newest entry.
type Change struct {
	First     float64   `json:"first"`
	Last      float64   `json:"last"`
	Delta     float64   `json:"delta"`
	Percent   float64   `json:"percent"`
	Entries   int       `json:"entries"`
	Since     time.Time `json:"since"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceChange summarises history in any order. Percent is 0 when the first
// price is not positive; ok is false for an empty history.
func PriceChange(history []catalog.PriceEntry) (Change, bool) {
	if len(history) == 0 {
		return Change{}, false
	}

	sorted := catalog.SortPriceHistory(history)
	newest, oldest := sorted[0], sorted[len(sorted)-1]

	c := Change{
		First:     oldest.Price,
		Last:      newest.Price,
		Delta:     sanitizer.Money(newest.Price - oldest.Price),
		Entries:   len(history),
		Since:     oldest.RecordedAt,
		UpdatedAt: newest.RecordedAt,
	}
	if oldest.Price > 0 {
		c.Percent = sanitizer.Money((newest.Price - oldest.Price) / oldest.Price * 100)
	}
	return c, true
}
