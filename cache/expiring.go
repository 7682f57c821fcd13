package cache

import "time"

// entry is the stored record for one key. Value and timestamps live in a
// single record, so a key cannot have timing without a value or vice versa.
type entry[V any] struct {
	value      V
	accessedAt time.Time
	updatedAt  time.Time
}

// ExpiringCache is a key-value map whose entries expire based on how long
// ago they were read (sliding expiry) and/or written (absolute expiry).
// Expiry is lazy: nothing is removed until the key is touched via GetOrAdd,
// AddOrUpdate or RemoveExpired, and IsExpired merely reports state.
//
// The cache is single-owner. It holds no locks and its factories and
// callbacks run inline on the calling goroutine; callers sharing a cache
// across goroutines must wrap it (see Synced) or supply their own mutual
// exclusion around every operation, including enumeration.
type ExpiringCache[K comparable, V any] struct {
	entries  map[K]*entry[V]
	opts     options[K, V]
	disposed bool
}

// New creates an empty cache. Without options the cache has no sliding
// expiry, an absolute expiry of DefaultAbsoluteExpiry, no eviction callback
// and a sweep hint of DefaultSweepInterval. Construction never fails;
// disabling both thresholds is legal and means entries never expire.
func New[K comparable, V any](opts ...Option[K, V]) *ExpiringCache[K, V] {
	o := defaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}
	return &ExpiringCache[K, V]{
		entries: make(map[K]*entry[V]),
		opts:    o,
	}
}

// Lookup returns the value for key and refreshes its last-access time.
// It performs no expiry check: a stale key is still readable until something
// evicts it. Callers that care about freshness use GetOrAdd or IsExpired.
// Absent keys fail with KeyNotFoundError.
func (c *ExpiringCache[K, V]) Lookup(key K) (V, error) {
	ent, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, &KeyNotFoundError{Key: key}
	}
	ent.accessedAt = c.opts.now()
	return ent.value, nil
}

// IsExpired reports whether key has exceeded a configured expiry threshold.
// Unknown keys are never expired, and with both thresholds disabled this
// always returns false.
func (c *ExpiringCache[K, V]) IsExpired(key K) bool {
	ent, ok := c.entries[key]
	if !ok {
		return false
	}
	return c.expired(ent, c.opts.now())
}

// expired evaluates both thresholds against now; either one exceeding its
// duration marks the entry expired.
func (c *ExpiringCache[K, V]) expired(ent *entry[V], now time.Time) bool {
	if d := c.opts.slidingExpiry; d > 0 && now.Sub(ent.accessedAt) > d {
		return true
	}
	if d := c.opts.absoluteExpiry; d > 0 && now.Sub(ent.updatedAt) > d {
		return true
	}
	return false
}

// GetOrAdd returns the value for key, building it on demand. A fresh
// existing key is marked accessed and returned without calling factory. An
// expired key is evicted first (the eviction callback sees the old value),
// then treated as a miss. On a miss, factory runs exactly once, inline; its
// error aborts the call with nothing inserted.
func (c *ExpiringCache[K, V]) GetOrAdd(key K, factory func(K) (V, error)) (V, error) {
	now := c.opts.now()
	if ent, ok := c.entries[key]; ok {
		if !c.expired(ent, now) {
			c.opts.metrics.Hit()
			ent.accessedAt = now
			return ent.value, nil
		}
		c.opts.metrics.Expire()
		c.evict(key, ent)
	}
	c.opts.metrics.Miss()

	value, err := factory(key)
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = &entry[V]{value: value, accessedAt: now, updatedAt: now}
	return value, nil
}

// AddOrUpdate stores factory's result for key. Unlike GetOrAdd it always
// invokes factory, even for a fresh existing key; a fresh key keeps its
// entry and gets the new value with refreshed access and update times. An
// expired key is evicted first, exactly as in GetOrAdd. A factory error
// leaves the prior state untouched.
func (c *ExpiringCache[K, V]) AddOrUpdate(key K, factory func(K) (V, error)) error {
	now := c.opts.now()
	if ent, ok := c.entries[key]; ok {
		if c.expired(ent, now) {
			c.opts.metrics.Expire()
			c.evict(key, ent)
		} else {
			value, err := factory(key)
			if err != nil {
				return err
			}
			ent.value = value
			ent.accessedAt = now
			ent.updatedAt = now
			return nil
		}
	}

	value, err := factory(key)
	if err != nil {
		return err
	}
	c.entries[key] = &entry[V]{value: value, accessedAt: now, updatedAt: now}
	return nil
}

// Remove deletes key and reports whether it was present. Explicit removal is
// not an eviction: the eviction callback does not fire.
func (c *ExpiringCache[K, V]) Remove(key K) bool {
	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Keys returns a snapshot of all keys, in no particular order. Stale entries
// are included; enumeration triggers no expiry checks or callbacks.
func (c *ExpiringCache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a snapshot of all values, in no particular order. Like
// Keys, it does not filter stale entries.
func (c *ExpiringCache[K, V]) Values() []V {
	values := make([]V, 0, len(c.entries))
	for _, ent := range c.entries {
		values = append(values, ent.value)
	}
	return values
}

// Len returns the number of entries currently stored, stale ones included.
func (c *ExpiringCache[K, V]) Len() int {
	return len(c.entries)
}

// RemoveExpired evicts every currently-expired key, firing the eviction
// callback for each, and returns how many were evicted.
func (c *ExpiringCache[K, V]) RemoveExpired() int {
	now := c.opts.now()
	evicted := 0
	for key, ent := range c.entries {
		if c.expired(ent, now) {
			c.opts.metrics.Expire()
			c.evict(key, ent)
			evicted++
		}
	}
	return evicted
}

// SweepInterval returns the configured periodic sweep hint.
func (c *ExpiringCache[K, V]) SweepInterval() time.Duration {
	return c.opts.sweepInterval
}

// Dispose evicts every remaining entry, firing the eviction callback once
// per key. Only the first call has effect; the cache stays usable as an
// empty cache afterwards.
func (c *ExpiringCache[K, V]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for key, ent := range c.entries {
		c.evict(key, ent)
	}
}

// evict removes one entry and notifies the callback. The value is captured
// before the delete so the callback always sees what was actually evicted.
// The entry is gone even if the callback panics.
func (c *ExpiringCache[K, V]) evict(key K, ent *entry[V]) {
	value := ent.value
	delete(c.entries, key)
	c.opts.metrics.Eviction()
	if c.opts.onEvict != nil {
		c.opts.onEvict(key, value)
	}
}
