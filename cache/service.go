package cache

import "context"

// KeySerializer builds a cache key from a namespace + arbitrary args.
// Distinct argument lists must never produce the same key.
type KeySerializer interface {
	SerializeKey(namespace string, args ...any) string
}

// Service exposes the read-through operations the search filter cache relies on.
// Implementations live in internal/cacheinfra; tests can provide in-memory fakes.
type Service[V any] interface {
	GetOrFetch(ctx context.Context, key string, fetchFn func(ctx context.Context) (V, error)) (V, error)
	Delete(ctx context.Context, key string) error
	InvalidateKeys(ctx context.Context, keys []string) error
}
