package tokenstore

import (
	"context"
	"time"
)

// Store maps session keys to API tokens.
type Store interface {
	// Get returns ErrNotFound when the key is unknown or expired.
	Get(ctx context.Context, key string) (string, error)
	// Set stores token under key. A zero ttl keeps it until Delete.
	Set(ctx context.Context, key, token string, ttl time.Duration) error
	// Delete is a no-op for unknown keys.
	Delete(ctx context.Context, key string) error
}

func validate(key, token string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if token == "" {
		return ErrEmptyToken
	}
	return nil
}
