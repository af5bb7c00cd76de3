// Package environment names the deployment stage the BFF runs in and carries it
// through request contexts.
//
// Parse accepts the usual short aliases (dev, stage, prod). Middleware stores
// the value on every request so the error responses can decide whether to
// expose internal error messages, which only happens in development.
package environment
