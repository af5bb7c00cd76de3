// Package backend reads and writes catalog records through the ERP REST API.
//
// Source is the contract the HTTP layer depends on. Client talks to the real
// API, FixtureSource serves a YAML file for local runs and demos, and Cached
// memoises the product and supplier collections so list views can be derived
// repeatedly without extra round trips.
//
// The API token of the signed-in user travels in the request context:
//
//	ctx = backend.WithToken(ctx, token)
//	products, err := src.Products(ctx)
//
// Failures are classified with sentinel errors (ErrUnauthorized, ErrNotFound,
// ErrRejected, ErrUpstream) that the HTTP layer maps to status codes.
package backend
