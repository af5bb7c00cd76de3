// Package tokenstore keeps the backend API token of each signed-in browser
// session, keyed by session id.
//
// MemoryStore serves single-instance deployments and tests. RedisStore shares
// tokens between instances through go-redis. Both expire tokens after the TTL
// given to Set, and both return ErrNotFound for unknown or expired sessions.
package tokenstore
