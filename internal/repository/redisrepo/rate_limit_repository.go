package redisrepo

import (
	"context"
	"time"

	"portfolio-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:contact:"

// RateLimitRepository keeps fixed-window counters in Redis so that a relay
// replicated across instances enforces one shared quota instead of one per
// process.
type RateLimitRepository struct {
	client *redis.Client
}

func NewRateLimitRepository(client *redis.Client) contract.RateLimitRepository {
	return &RateLimitRepository{client: client}
}

func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	fullKey := keyPrefix + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	// NX: only the hit that opens the window sets the expiry, so the window
	// stays fixed instead of sliding on every hit.
	pipe.ExpireNX(ctx, fullKey, window)
	ttl := pipe.TTL(ctx, fullKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	return incr.Val(), time.Now().Add(ttl.Val()), nil
}
