package repository

import (
	"context"
	"time"
)

// ITransientStore holds values that expire after a TTL.
// Get returns ok=false on a miss or when the entry has expired.
type ITransientStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
