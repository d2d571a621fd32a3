package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-gym-records/cache"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
	if cfg.Cache.Backend != cache.BackendSturdyc {
		t.Errorf("expected sturdyc backend, got %s", cfg.Cache.Backend)
	}
	if cfg.Search.SimilarityThreshold != 0.6 {
		t.Errorf("expected threshold 0.6, got %v", cfg.Search.SimilarityThreshold)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
database:
  path: /var/lib/gym/records.db
cache:
  backend: ristretto
  capacity: 256
  ttl: 5m
search:
  similarity_threshold: 0.75
log:
  backend: logrus
  level: debug
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Database.Path != "/var/lib/gym/records.db" {
		t.Errorf("unexpected path %s", cfg.Database.Path)
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("expected default driver to survive, got %s", cfg.Database.Driver)
	}
	if cfg.Cache.Backend != cache.BackendRistretto || cfg.Cache.Capacity != 256 || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Cache.NumShards != cache.DefaultConfig().NumShards {
		t.Errorf("expected default shards, got %d", cfg.Cache.NumShards)
	}
	if cfg.Search.SimilarityThreshold != 0.75 {
		t.Errorf("unexpected threshold %v", cfg.Search.SimilarityThreshold)
	}
	if cfg.Log.Backend != LogBackendLogrus || cfg.Log.Level != "debug" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantField string
	}{
		{name: "threshold zero", yaml: "search:\n  similarity_threshold: 0\n", wantField: "search.similarity_threshold"},
		{name: "threshold above one", yaml: "search:\n  similarity_threshold: 1.5\n", wantField: "search.similarity_threshold"},
		{name: "cache capacity", yaml: "cache:\n  capacity: -1\n", wantField: "cache.capacity"},
		{name: "cache eviction", yaml: "cache:\n  eviction_percentage: 0\n", wantField: "cache.eviction_percentage"},
		{name: "cache backend", yaml: "cache:\n  backend: redis\n", wantField: "cache.backend"},
		{name: "empty path", yaml: "database:\n  path: ''\n", wantField: "database.path"},
		{name: "log backend", yaml: "log:\n  backend: syslog\n", wantField: "log.backend"},
		{name: "log level", yaml: "log:\n  level: trace\n", wantField: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
			}
			if cerr.Field != tt.wantField {
				t.Errorf("expected field %s, got %s", tt.wantField, cerr.Field)
			}
		})
	}

	if _, err := Parse([]byte("cache: [")); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() missing file error = %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("expected defaults for missing file")
	}

	path := filepath.Join(t.TempDir(), "gym.yaml")
	if err := os.WriteFile(path, []byte("log:\n  backend: nop\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Backend != LogBackendNop {
		t.Errorf("expected nop backend, got %s", cfg.Log.Backend)
	}
}

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"Capacity":           "capacity",
		"NumShards":          "num_shards",
		"TTL":                "ttl",
		"EvictionPercentage": "eviction_percentage",
		"EvictionInterval":   "eviction_interval",
		"HTTPServer":         "http_server",
		"":                   "",
	}
	for in, want := range tests {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
