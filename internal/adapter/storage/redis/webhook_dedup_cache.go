package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// WebhookDedupCache implements ports.WebhookDedupCache using Redis. It is a
// fast path in front of the durable webhook_events table; a cache miss is
// never treated as proof of first delivery.
type WebhookDedupCache struct {
	client *goredis.Client
	prefix string
}

// NewWebhookDedupCache creates a new Redis-backed webhook dedup cache.
func NewWebhookDedupCache(client *goredis.Client) *WebhookDedupCache {
	return &WebhookDedupCache{
		client: client,
		prefix: "webhook:processed:",
	}
}

// IsProcessed reports whether the dedup key is known to be processed.
func (c *WebhookDedupCache) IsProcessed(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis webhook dedup exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed records the dedup key with TTL.
func (c *WebhookDedupCache) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis webhook dedup set: %w", err)
	}
	return nil
}
