package repository

import "context"

// ISettings is the host's key/value settings store. Get returns the default for unknown keys.
type ISettings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
