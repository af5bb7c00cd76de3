package backend

import (
	"context"
	"time"

	"github.com/dmitrymomot/erplite/pkg/cache"
	"github.com/dmitrymomot/erplite/pkg/catalog"
)

const collectionKey = "all"

// Cached memoises the product and supplier collections of a Source. Creating a
// record through Cached drops the matching collection.
type Cached struct {
	Source
	products  *cache.LRUCache[string, []catalog.Product]
	suppliers *cache.LRUCache[string, []catalog.Supplier]
}

// NewCached wraps src. A non-positive ttl keeps collections until invalidated.
func NewCached(src Source, ttl time.Duration) *Cached {
	return &Cached{
		Source:    src,
		products:  cache.New(1, cache.WithTTL[string, []catalog.Product](ttl)),
		suppliers: cache.New(1, cache.WithTTL[string, []catalog.Supplier](ttl)),
	}
}

func (c *Cached) Products(ctx context.Context) ([]catalog.Product, error) {
	return c.products.GetOrLoad(ctx, collectionKey, c.Source.Products)
}

func (c *Cached) Suppliers(ctx context.Context) ([]catalog.Supplier, error) {
	return c.suppliers.GetOrLoad(ctx, collectionKey, c.Source.Suppliers)
}

func (c *Cached) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	created, err := c.Source.CreateProduct(ctx, p)
	if err != nil {
		return created, err
	}
	c.products.Remove(collectionKey)
	return created, nil
}

func (c *Cached) CreateSupplier(ctx context.Context, s catalog.Supplier) (catalog.Supplier, error) {
	created, err := c.Source.CreateSupplier(ctx, s)
	if err != nil {
		return created, err
	}
	c.suppliers.Remove(collectionKey)
	return created, nil
}

// Invalidate drops both cached collections.
func (c *Cached) Invalidate() {
	c.products.Clear()
	c.suppliers.Clear()
}
