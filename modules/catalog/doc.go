// Package catalog mounts the BFF endpoints for products, suppliers, price
// history, dashboard analytics and sign-in.
//
//	svc := catalog.NewService(source, sessions,
//		catalog.WithLogger(log),
//		catalog.WithSessionTTL(12*time.Hour),
//	)
//	r.Mount("/api", svc.Handle())
//
// Every route except POST /auth/login requires the X-Session-ID header
// returned by login. The session resolves to the backend API token, which is
// attached to the request context for the backend client.
package catalog
