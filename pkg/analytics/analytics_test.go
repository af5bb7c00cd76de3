package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/erplite/pkg/analytics"
	"github.com/dmitrymomot/erplite/pkg/catalog"
)

func products() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Category: "Ferramentas", Brand: "Tramontina", CostPrice: 20, SalePrice: 40, Stock: 3},
		{ID: "2", Category: "Pintura", Brand: "Suvinil", CostPrice: 60, SalePrice: 80, Stock: 10},
		{ID: "3", Category: "Ferramentas", Brand: "Vonder", CostPrice: 30, SalePrice: 40, Stock: 2},
		{ID: "4", Category: "Ferragens", Brand: "Tramontina", CostPrice: 1, SalePrice: 0, Stock: 500},
		{ID: "5", Category: " ", Brand: "", CostPrice: 1, SalePrice: 2, Stock: 1},
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	groups := analytics.ByCategory(products())
	require.Len(t, groups, 4)

	assert.Equal(t, analytics.Group{Key: "Ferramentas", Count: 2, Stock: 5, AvgMargin: 37.5}, groups[0])
	assert.Equal(t, "(none)", groups[1].Key)
	assert.Equal(t, "Ferragens", groups[2].Key)
	assert.InDelta(t, 0.0, groups[2].AvgMargin, 1e-9)
	assert.Equal(t, "Pintura", groups[3].Key)
	assert.InDelta(t, 25.0, groups[3].AvgMargin, 1e-9)
}

func TestByBrand(t *testing.T) {
	t.Parallel()

	groups := analytics.ByBrand(products())
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"Tramontina", analytics.Unassigned, "Suvinil", "Vonder"}, keys)
	assert.Equal(t, 503, groups[0].Stock)
	assert.InDelta(t, 25.0, groups[0].AvgMargin, 1e-9)

	assert.Empty(t, analytics.ByBrand(nil))
}

func TestPriceChange(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("increase", func(t *testing.T) {
		t.Parallel()
		c, ok := analytics.PriceChange([]catalog.PriceEntry{
			{Price: 44, RecordedAt: base.Add(48 * time.Hour)},
			{Price: 40, RecordedAt: base},
			{Price: 42, RecordedAt: base.Add(24 * time.Hour)},
		})
		require.True(t, ok)
		assert.InDelta(t, 40.0, c.First, 1e-9)
		assert.InDelta(t, 44.0, c.Last, 1e-9)
		assert.InDelta(t, 4.0, c.Delta, 1e-9)
		assert.InDelta(t, 10.0, c.Percent, 1e-9)
		assert.Equal(t, 3, c.Entries)
		assert.Equal(t, base, c.Since)
		assert.Equal(t, base.Add(48*time.Hour), c.UpdatedAt)
	})

	t.Run("single entry", func(t *testing.T) {
		t.Parallel()
		c, ok := analytics.PriceChange([]catalog.PriceEntry{{Price: 9.9, RecordedAt: base}})
		require.True(t, ok)
		assert.InDelta(t, 0.0, c.Delta, 1e-9)
		assert.InDelta(t, 0.0, c.Percent, 1e-9)
	})

	t.Run("zero starting price", func(t *testing.T) {
		t.Parallel()
		c, ok := analytics.PriceChange([]catalog.PriceEntry{
			{Price: 0, RecordedAt: base},
			{Price: 5, RecordedAt: base.Add(time.Hour)},
		})
		require.True(t, ok)
		assert.InDelta(t, 5.0, c.Delta, 1e-9)
		assert.InDelta(t, 0.0, c.Percent, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, ok := analytics.PriceChange(nil)
		assert.False(t, ok)
	})
}
