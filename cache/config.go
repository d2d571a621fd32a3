package cache

import (
	"io"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gym-records/internal/cacheinfra"
)

const (
	// BackendSturdyc selects the sharded sturdyc client (default).
	BackendSturdyc = "sturdyc"
	// BackendRistretto selects the dgraph-io/ristretto cache.
	BackendRistretto = "ristretto"
)

// Config exposes cache configuration options for consumers of the cache package.
type Config struct {
	Backend            string        `yaml:"backend"`
	Capacity           int           `yaml:"capacity"`
	NumShards          int           `yaml:"num_shards"`
	TTL                time.Duration `yaml:"ttl"`
	EvictionPercentage int           `yaml:"eviction_percentage"`
	EvictionInterval   time.Duration `yaml:"eviction_interval"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	cfg := convertFromInternal(cacheinfra.DefaultConfig())
	cfg.Backend = BackendSturdyc
	return cfg
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendSturdyc, BackendRistretto:
	default:
		return &cacheinfra.ConfigError{Field: "Backend", Message: "must be one of sturdyc, ristretto"}
	}
	return c.toInternal().Validate()
}

// NewService constructs the configured cache backend for values of type V.
func NewService[V any](cfg Config) (Service[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid cache config").
			WithTextCode("INVALID_CACHE_CONFIG")
	}

	if cfg.Backend == BackendRistretto {
		svc, err := cacheinfra.NewRistrettoService[V](cfg.toInternal())
		if err != nil {
			return nil, err
		}
		return svc, nil
	}

	svc, err := cacheinfra.NewSturdycService[V](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Close releases svc when its backend holds background resources, which is
// the case for ristretto. Backends without a Close method are left as is.
func Close[V any](svc Service[V]) error {
	if closer, ok := svc.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
