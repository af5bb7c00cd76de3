// Package cache provides a generic, thread-safe LRU cache whose entries can
// expire after a fixed time to live.
//
// The BFF layer keeps whole backend collections in it so list views can be
// re-derived on every request without hitting the API again:
//
//	products := cache.New[string, []catalog.Product](16, cache.WithTTL(30*time.Second))
//	items, err := products.GetOrLoad(ctx, "products", func(ctx context.Context) ([]catalog.Product, error) {
//		return api.Products(ctx)
//	})
//
// Concurrent GetOrLoad calls for the same missing key share one load. Expired
// entries are dropped lazily on access. An eviction callback, when set, sees
// every entry leaving the cache, whether through capacity pressure, expiry,
// Remove or Clear.
package cache
