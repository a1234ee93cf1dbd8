package repository

import (
	"context"
	"time"
)

// CacheRepository stores small string values such as serialized loan quotes.
// A zero ttl means the entry never expires.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
