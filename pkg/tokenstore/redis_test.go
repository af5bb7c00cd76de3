package tokenstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/erplite/pkg/tokenstore"
)

var _ tokenstore.Store = (*tokenstore.RedisStore)(nil)

func TestRedisStore_Unreachable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	s := tokenstore.NewRedis(client)
	ctx := context.Background()

	_, err := s.Get(ctx, "sess")
	assert.ErrorIs(t, err, tokenstore.ErrStoreFailure)
	assert.ErrorIs(t, s.Set(ctx, "sess", "tok", time.Minute), tokenstore.ErrStoreFailure)
	assert.ErrorIs(t, s.Delete(ctx, "sess"), tokenstore.ErrStoreFailure)

	assert.ErrorIs(t, s.Set(ctx, "", "tok", 0), tokenstore.ErrEmptyKey)
	assert.ErrorIs(t, s.Set(ctx, "sess", "", 0), tokenstore.ErrEmptyToken)
}

// Runs against a real server when REDIS_TEST_URL is set.
func TestRedisStore_Integration(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	s := tokenstore.NewRedis(client, tokenstore.WithPrefix("erplite-test:"))

	require.NoError(t, s.Set(ctx, "sess-1", "tok-1", time.Minute))
	token, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	raw, err := client.Get(ctx, "erplite-test:sess-1").Result()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", raw)

	require.NoError(t, s.Delete(ctx, "sess-1"))
	_, err = s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)
}
