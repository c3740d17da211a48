package memory

import (
	"context"
	"sync"
	"time"

	"portfolio-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// RateLimitRepository keeps fixed-window counters in process memory.
// Expired windows are swept by the cache janitor on a fixed cadence, so a
// bucket whose window has lapsed is simply absent on its next hit. State is
// lost on restart and not shared across instances; the limiter is advisory.
type RateLimitRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewRateLimitRepository(sweepInterval time.Duration) contract.RateLimitRepository {
	// Per-entry TTL is set on each window open, so no default expiration here.
	c := cache.New(cache.NoExpiration, sweepInterval)
	return &RateLimitRepository{
		cache: c,
	}
}

func (r *RateLimitRepository) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	// Serialize check-and-increment so two hits on a bucket with one slot
	// left cannot both observe capacity.
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, expiry, found := r.cache.GetWithExpiration(key); found {
		count, err := r.cache.IncrementInt64(key, 1)
		if err == nil {
			return count, expiry, nil
		}
		// Entry lapsed between lookup and increment; open a fresh window.
	}

	r.cache.Set(key, int64(1), window)
	return 1, time.Now().Add(window), nil
}
