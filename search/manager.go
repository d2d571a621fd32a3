package search

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-gym-records/cache"
	"github.com/goliatone/go-gym-records/logging"
	"github.com/puzpuzpuz/xsync/v3"
)

const filterNamespace = "filter"

// Formatter produces the display rows for one entity kind, usually by reading
// every record from the record store.
type Formatter interface {
	Format(ctx context.Context, kind Kind) ([]Row, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(ctx context.Context, kind Kind) ([]Row, error)

// Format calls f(ctx, kind).
func (f FormatterFunc) Format(ctx context.Context, kind Kind) ([]Row, error) {
	return f(ctx, kind)
}

// Invalidator is implemented by anything that can mark a kind's cached rows stale.
// Write paths call it after a successful create, update or delete.
type Invalidator interface {
	Invalidate(kind Kind)
}

// FilterKey identifies a memoized search result: the kind and the lower-cased query.
type FilterKey struct {
	Kind  Kind
	Query string
}

// KindStats counts cache activity for one kind.
type KindStats struct {
	Rebuilds      int
	FetchFailures int
	FilterHits    int
	FilterMisses  int
	Invalidations int
}

// Manager owns the base cache, the filter cache and the per kind dirty flags.
//
// The base cache holds the last formatted snapshot for each kind. It is rebuilt
// at most once per invalidation: reads between two invalidations share the same
// slice and never reach the Formatter again. Filter results are memoized per
// FilterKey and evicted for a kind whenever that kind is invalidated or rebuilt.
//
// A Formatter failure is logged and cached as an empty snapshot; the kind stays
// empty until the next Invalidate. All methods are serialized by one mutex.
type Manager struct {
	mu sync.Mutex

	formatter Formatter
	matcher   *Matcher
	filters   cache.Service[[]Row]
	keys      cache.KeySerializer
	logger    logging.Logger

	base     map[Kind][]Row
	dirty    map[Kind]bool
	registry *xsync.MapOf[FilterKey, string]
	stats    map[Kind]*KindStats
}

// Option configures a Manager.
type Option func(*Manager)

// WithMatcher replaces the default match engine.
func WithMatcher(m *Matcher) Option {
	return func(mgr *Manager) {
		if m != nil {
			mgr.matcher = m
		}
	}
}

// WithFilterCache sets the backend used to memoize filtered rows.
func WithFilterCache(svc cache.Service[[]Row]) Option {
	return func(mgr *Manager) {
		if svc != nil {
			mgr.filters = svc
		}
	}
}

// WithKeySerializer sets the serializer turning FilterKeys into backend keys.
func WithKeySerializer(ks cache.KeySerializer) Option {
	return func(mgr *Manager) {
		if ks != nil {
			mgr.keys = ks
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(mgr *Manager) {
		mgr.logger = logging.OrNop(l)
	}
}

// NewManager creates a Manager reading through formatter. Without
// WithFilterCache, a sturdyc backed cache with default settings is used.
func NewManager(formatter Formatter, opts ...Option) (*Manager, error) {
	m := &Manager{
		formatter: formatter,
		logger:    logging.NopLogger{},
		base:      make(map[Kind][]Row),
		dirty:     make(map[Kind]bool),
		registry:  xsync.NewMapOf[FilterKey, string](),
		stats:     make(map[Kind]*KindStats),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.matcher == nil {
		m.matcher = DefaultMatcher(DefaultSimilarityThreshold)
	}
	if m.keys == nil {
		m.keys = cache.NewDefaultKeySerializer()
	}
	if m.filters == nil {
		svc, err := cache.NewService[[]Row](cache.DefaultConfig())
		if err != nil {
			return nil, err
		}
		m.filters = svc
	}

	return m, nil
}

// BaseRows returns the unfiltered rows for kind, rebuilding them through the
// Formatter when the kind is dirty or has never been loaded.
func (m *Manager) BaseRows(ctx context.Context, kind Kind) []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baseRowsLocked(ctx, kind)
}

// Filtered returns the rows of kind matching query. A blank query returns the
// base rows. Results are memoized under (kind, lower-cased query).
func (m *Manager) Filtered(ctx context.Context, kind Kind, query string) []Row {
	query = strings.TrimSpace(query)
	if query == "" {
		return m.BaseRows(ctx, kind)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// A dirty kind has no live filter entries; rebuilding first keeps that true
	rows := m.baseRowsLocked(ctx, kind)

	fk := FilterKey{Kind: kind, Query: strings.ToLower(query)}
	key := m.keys.SerializeKey(filterNamespace, fk)
	m.registry.Store(fk, key)

	miss := false
	result, err := m.filters.GetOrFetch(ctx, key, func(ctx context.Context) ([]Row, error) {
		miss = true
		return m.matcher.Filter(rows, query), nil
	})
	if err != nil {
		m.logger.Error("filter cache lookup failed", logging.Fields{
			"kind":  kind.String(),
			"query": fk.Query,
			"error": err,
		})
		result = m.matcher.Filter(rows, query)
		miss = true
	}

	st := m.statsLocked(kind)
	if miss {
		st.FilterMisses++
	} else {
		st.FilterHits++
	}

	return result
}

// Invalidate marks kind dirty and evicts its memoized filter results.
// Filter results of other kinds are kept.
func (m *Manager) Invalidate(kind Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidateLocked(kind)
}

// InvalidateAll marks every kind dirty.
func (m *Manager) InvalidateAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range Kinds {
		m.invalidateLocked(kind)
	}
}

// Stats returns a snapshot of the per kind counters.
func (m *Manager) Stats() map[Kind]KindStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[Kind]KindStats, len(m.stats))
	for kind, st := range m.stats {
		out[kind] = *st
	}
	return out
}

func (m *Manager) baseRowsLocked(ctx context.Context, kind Kind) []Row {
	if rows, ok := m.base[kind]; ok && !m.dirty[kind] {
		return rows
	}

	st := m.statsLocked(kind)
	st.Rebuilds++

	rows, err := m.format(ctx, kind)
	if err != nil {
		st.FetchFailures++
		m.logger.Warn("record fetch failed, caching empty result until next invalidation", logging.Fields{
			"kind":  kind.String(),
			"error": err,
		})
		rows = []Row{}
	}
	if rows == nil {
		rows = []Row{}
	}

	m.base[kind] = rows
	m.dirty[kind] = false
	m.evictFiltersLocked(ctx, kind)

	m.logger.Debug("base rows rebuilt", logging.Fields{
		"kind": kind.String(),
		"rows": len(rows),
	})

	return rows
}

// format calls the Formatter, turning a panic in formatting code into an error
// so that one bad batch degrades like any other fetch failure.
func (m *Manager) format(ctx context.Context, kind Kind) (rows []Row, err error) {
	if !kind.Valid() {
		_, err = ParseKind(kind.String())
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = formatPanicError(kind, r)
		}
	}()

	return m.formatter.Format(ctx, kind)
}

func (m *Manager) invalidateLocked(kind Kind) {
	m.dirty[kind] = true
	m.statsLocked(kind).Invalidations++
	m.evictFiltersLocked(context.Background(), kind)
}

func (m *Manager) evictFiltersLocked(ctx context.Context, kind Kind) {
	var stale []FilterKey
	m.registry.Range(func(fk FilterKey, _ string) bool {
		if fk.Kind == kind {
			stale = append(stale, fk)
		}
		return true
	})
	if len(stale) == 0 {
		return
	}

	keys := make([]string, 0, len(stale))
	for _, fk := range stale {
		if key, ok := m.registry.LoadAndDelete(fk); ok {
			keys = append(keys, key)
		}
	}

	if err := m.filters.InvalidateKeys(ctx, keys); err != nil {
		m.logger.Error("filter cache eviction failed", logging.Fields{
			"kind":  kind.String(),
			"keys":  len(keys),
			"error": err,
		})
	}
}

func (m *Manager) statsLocked(kind Kind) *KindStats {
	st, ok := m.stats[kind]
	if !ok {
		st = &KindStats{}
		m.stats[kind] = st
	}
	return st
}
