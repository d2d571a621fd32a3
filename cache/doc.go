// Package cache provides the storage contract and key serialization behind the
// search filter cache.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Service: a typed read-through cache used to memoize filtered row sets
//   - KeySerializer: builds stable, collision-free cache keys from a namespace and arguments
//
// Backends live in internal/cacheinfra and are selected through Config.Backend:
//
//	svc, err := cache.NewService[[]search.Row](cache.DefaultConfig())
//	rows, err := svc.GetOrFetch(ctx, key, func(ctx context.Context) ([]search.Row, error) {
//		return compute(ctx)
//	})
//
// # Key Serialization Strategy
//
// The default key serializer uses reflection to handle the argument types the search
// layer produces:
//
//   - Strings are quoted with strconv.Quote
//   - fmt.Stringer values are serialized by name and quoted
//   - Structs serialize exported fields as Name:value pairs
//   - Slices, arrays and maps are serialized recursively, maps with sorted pairs
//   - Anything else falls back to JSON
//
// Because every string is quoted, user supplied text cannot forge a segment boundary.
// The composite (kind "a", query "_b") and (kind "a_", query "b") therefore map to
// different keys, which a plain string concatenation would not guarantee.
//
// # Invalidation
//
// Service.Delete and Service.InvalidateKeys remove entries explicitly. Callers that need
// to evict a group of keys (for example every filter for one entity kind) keep their own
// registry of issued keys and pass them to InvalidateKeys.
package cache
