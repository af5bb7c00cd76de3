// Package ratelimiter implements a token bucket limiter with a pluggable
// store and an HTTP middleware. The BFF uses it to throttle sign-in attempts
// per client address.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     5,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByIP(), deny)).Post("/auth/login", login)
package ratelimiter
