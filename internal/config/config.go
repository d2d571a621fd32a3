// Package config loads the application settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gym-records/cache"
	"github.com/goliatone/go-gym-records/internal/cacheinfra"
	"github.com/goliatone/go-gym-records/search"
	"gopkg.in/yaml.v3"
)

// Log backends.
const (
	LogBackendZap    = "zap"
	LogBackendLogrus = "logrus"
	LogBackendNop    = "nop"
)

// Config is the application configuration, usually read from a YAML file.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Cache    cache.Config   `yaml:"cache"`
	Search   SearchConfig   `yaml:"search"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig selects the SQL driver and the database file.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// SearchConfig tunes the match engine. SimilarityThreshold must be in (0, 1].
type SearchConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// LogConfig picks the logging backend and its minimum level.
type LogConfig struct {
	Backend string `yaml:"backend"`
	Level   string `yaml:"level"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		Database: DatabaseConfig{Driver: "sqlite3", Path: "gym.db"},
		Cache:    cache.DefaultConfig(),
		Search:   SearchConfig{SimilarityThreshold: search.DefaultSimilarityThreshold},
		Log:      LogConfig{Backend: LogBackendZap, Level: "info"},
	}
}

// Load reads path over Defaults and validates the result. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to read config file").
			WithMetadata(map[string]any{"path": path})
	}

	return Parse(data)
}

// Parse decodes YAML data over Defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, goerrors.Wrap(err, goerrors.CategoryValidation, "failed to parse config").
			WithTextCode("INVALID_CONFIG")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every section and reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return &ConfigError{Field: "database.path", Message: "must not be empty"}
	}

	if err := c.Cache.Validate(); err != nil {
		var cerr *cacheinfra.ConfigError
		if errors.As(err, &cerr) {
			return &ConfigError{Field: "cache." + toSnake(cerr.Field), Message: cerr.Message}
		}
		return err
	}

	if t := c.Search.SimilarityThreshold; t <= 0 || t > 1 {
		return &ConfigError{Field: "search.similarity_threshold", Message: "must be in (0, 1]"}
	}

	switch c.Log.Backend {
	case LogBackendZap, LogBackendLogrus, LogBackendNop:
	default:
		return &ConfigError{Field: "log.backend", Message: "must be one of zap, logrus, nop"}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}

	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

// Error reports the offending field path and the reason.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
}
