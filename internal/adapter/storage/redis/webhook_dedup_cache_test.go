package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookDedupCache_MarkAndCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWebhookDedupCache(client)
	ctx := context.Background()

	key := "XENDIT_SUPPORT:inv-001"

	// Check before mark => false
	processed, err := cache.IsProcessed(ctx, key)
	assert.NoError(t, err)
	assert.False(t, processed)

	// Mark
	err = cache.MarkProcessed(ctx, key, 24*time.Hour)
	require.NoError(t, err)

	// Check after mark
	processed, err = cache.IsProcessed(ctx, key)
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestWebhookDedupCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWebhookDedupCache(client)
	ctx := context.Background()

	key := "XENDIT_WITHDRAWAL:disb-002"

	err := cache.MarkProcessed(ctx, key, 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	processed, err := cache.IsProcessed(ctx, key)
	assert.NoError(t, err)
	assert.False(t, processed, "expired key should read as unprocessed")
}

func TestWebhookDedupCache_KeysAreIsolatedByType(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWebhookDedupCache(client)
	ctx := context.Background()

	err := cache.MarkProcessed(ctx, "XENDIT_SUPPORT:shared-id", 1*time.Hour)
	require.NoError(t, err)

	processed, err := cache.IsProcessed(ctx, "XENDIT_WITHDRAWAL:shared-id")
	require.NoError(t, err)
	assert.False(t, processed)
}
