package cacheinfra

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoService stores typed values in a ristretto cache.
type RistrettoService[V any] struct {
	c      *ristretto.Cache
	ttl    time.Duration
	closed atomic.Bool
}

// NewRistrettoService creates a ristretto backed cache service. Every entry costs 1,
// so Capacity bounds the number of entries.
func NewRistrettoService[V any](cfg Config) (*RistrettoService[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(cfg.Capacity) * 10,
		MaxCost:            int64(cfg.Capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoService[V]{c: c, ttl: cfg.TTL}, nil
}

// GetOrFetch returns the cached value for key or computes and stores it.
func (s *RistrettoService[V]) GetOrFetch(ctx context.Context, key string, fetchFn func(ctx context.Context) (V, error)) (V, error) {
	if fetchFn == nil {
		var zero V
		return zero, &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}

	if raw, ok := s.c.Get(key); ok {
		if v, ok := raw.(V); ok {
			return v, nil
		}
		// unexpected entry shape, drop it and refetch
		s.c.Del(key)
	}

	v, err := fetchFn(ctx)
	if err != nil {
		return v, err
	}

	s.c.SetWithTTL(key, v, 1, s.ttl)
	// sets are buffered, make the entry visible to the next Get
	s.c.Wait()

	return v, nil
}

// Delete removes a single entry from the cache.
func (s *RistrettoService[V]) Delete(ctx context.Context, key string) error {
	s.c.Del(key)
	return nil
}

// InvalidateKeys removes multiple entries from the cache.
func (s *RistrettoService[V]) InvalidateKeys(ctx context.Context, keys []string) error {
	for _, key := range keys {
		s.c.Del(key)
	}
	return nil
}

// Close stops the ristretto background goroutines. Calling it again is a no-op.
func (s *RistrettoService[V]) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.c.Close()
	}
	return nil
}

// Closed reports whether Close has been called.
func (s *RistrettoService[V]) Closed() bool {
	return s.closed.Load()
}
