package contract

import (
	"context"
	"time"
)

// RateLimitRepository counts requests per bucket inside a fixed window.
// Hit atomically opens a window on the bucket's first request and increments
// on every later one; count is the value after the increment and resetAt is
// when the current window closes. The count is advisory: entries live only
// as long as the backing store and decisions stay local to one instance
// unless the Redis implementation is used.
type RateLimitRepository interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}
