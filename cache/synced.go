package cache

import (
	"sync"
	"time"
)

// Synced is a mutex-guarded ExpiringCache safe for concurrent use. Every
// operation takes the lock, so factories and eviction callbacks run while it
// is held; they must not call back into the same cache.
type Synced[K comparable, V any] struct {
	mu    sync.RWMutex
	inner *ExpiringCache[K, V]
}

// NewSynced creates a concurrency-safe cache with the same options as New.
func NewSynced[K comparable, V any](opts ...Option[K, V]) *Synced[K, V] {
	return &Synced[K, V]{inner: New(opts...)}
}

// Lookup takes the write lock because it refreshes the last-access time.
func (s *Synced[K, V]) Lookup(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Lookup(key)
}

func (s *Synced[K, V]) IsExpired(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.IsExpired(key)
}

func (s *Synced[K, V]) GetOrAdd(key K, factory func(K) (V, error)) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetOrAdd(key, factory)
}

func (s *Synced[K, V]) AddOrUpdate(key K, factory func(K) (V, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.AddOrUpdate(key, factory)
}

func (s *Synced[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Remove(key)
}

func (s *Synced[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Keys()
}

func (s *Synced[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Values()
}

func (s *Synced[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

func (s *Synced[K, V]) RemoveExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.RemoveExpired()
}

// SweepInterval returns the configured periodic sweep hint. The options are
// immutable, so no lock is needed.
func (s *Synced[K, V]) SweepInterval() time.Duration {
	return s.inner.SweepInterval()
}

func (s *Synced[K, V]) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Dispose()
}

// Verify both caches satisfy the common surface.
var (
	_ Store[string, int] = (*ExpiringCache[string, int])(nil)
	_ Store[string, int] = (*Synced[string, int])(nil)
)
