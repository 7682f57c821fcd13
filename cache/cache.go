// Package cache provides an in-process expiring key-value cache.
//
// ExpiringCache is the core: a single-owner map with per-key access and
// update timestamps, sliding and/or absolute expiry, and an eviction
// callback. Synced wraps a core with a mutex for cross-goroutine use, and
// Sweeper adds an optional periodic eviction pass on top of a Synced cache.
package cache

// Store is the common surface shared by ExpiringCache and Synced.
type Store[K comparable, V any] interface {
	// Lookup returns the value for key and refreshes its last-access time.
	Lookup(key K) (V, error)

	// IsExpired reports whether key has exceeded a configured expiry threshold.
	IsExpired(key K) bool

	// GetOrAdd returns the value for key, building it via factory on a miss.
	GetOrAdd(key K, factory func(K) (V, error)) (V, error)

	// AddOrUpdate stores the factory's result for key, unconditionally.
	AddOrUpdate(key K, factory func(K) (V, error)) error

	// Remove deletes key and reports whether it was present.
	Remove(key K) bool

	// Keys returns a snapshot of all keys currently stored.
	Keys() []K

	// Values returns a snapshot of all values currently stored.
	Values() []V

	// Len returns the number of entries currently stored.
	Len() int

	// Dispose evicts every remaining entry. Only the first call has effect.
	Dispose()
}
