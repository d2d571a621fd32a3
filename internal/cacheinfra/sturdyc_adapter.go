package cacheinfra

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the configuration shared by the cache backends.
type Config struct {
	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Only used by the sturdyc backend. Must be greater than 0. Default: 256
	NumShards int

	// TTL is the default time-to-live for cached entries.
	// Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the cache reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the default interval.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults for a single user desktop process.
//
// Early refreshes are deliberately not offered: a background refresh racing an
// invalidation could write a stale filter result back after it was evicted.
func DefaultConfig() Config {
	return Config{
		Capacity:           1024,
		NumShards:          16,
		TTL:                30 * time.Minute,
		EvictionPercentage: 10,
	}
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly
// to sturdyc.New() and are not included in the options.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EvictionInterval < 0 {
		return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// SturdycService wraps a typed sturdyc client.
type SturdycService[V any] struct {
	client *sturdyc.Client[V]
}

// NewSturdycService creates a new sturdyc cache service adapter.
func NewSturdycService[V any](cfg Config) (*SturdycService[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[V](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &SturdycService[V]{client: client}, nil
}

// GetOrFetch returns the cached value for key, or runs fetchFn, stores its result
// and returns it. Errors from fetchFn are returned and nothing is stored.
func (s *SturdycService[V]) GetOrFetch(ctx context.Context, key string, fetchFn func(ctx context.Context) (V, error)) (V, error) {
	if fetchFn == nil {
		var zero V
		return zero, &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}
	return s.client.GetOrFetch(ctx, key, fetchFn)
}

// Delete removes a single entry from the cache.
func (s *SturdycService[V]) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// InvalidateKeys removes multiple entries from the cache.
func (s *SturdycService[V]) InvalidateKeys(ctx context.Context, keys []string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

// Keys returns every key currently held by the client.
func (s *SturdycService[V]) Keys() []string {
	return s.client.ScanKeys()
}
