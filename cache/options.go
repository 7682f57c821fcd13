package cache

import "time"

// Defaults applied by New when no option overrides them.
const (
	// DefaultAbsoluteExpiry is how long a value stays valid after its last
	// write when no absolute expiry is configured explicitly.
	DefaultAbsoluteExpiry = time.Hour

	// DefaultSweepInterval is the default periodic sweep hint. The cache
	// itself never schedules anything; see Sweeper.
	DefaultSweepInterval = time.Minute
)

// EvictionCallback is invoked with the key and value of every evicted entry.
// Eviction means removal triggered by expiry or disposal; explicit Remove
// never triggers it.
type EvictionCallback[K comparable, V any] func(key K, value V)

// options is the construction-time configuration of an ExpiringCache. It is
// captured once by New and never mutated afterwards.
type options[K comparable, V any] struct {
	slidingExpiry  time.Duration
	absoluteExpiry time.Duration
	sweepInterval  time.Duration
	onEvict        EvictionCallback[K, V]
	metrics        Metrics
	now            func() time.Time
}

// Option configures an ExpiringCache at construction time.
type Option[K comparable, V any] func(*options[K, V])

func defaultOptions[K comparable, V any]() options[K, V] {
	return options[K, V]{
		absoluteExpiry: DefaultAbsoluteExpiry,
		sweepInterval:  DefaultSweepInterval,
		metrics:        NoopMetrics{},
		now:            time.Now,
	}
}

// WithSlidingExpiry expires a key once it has not been read for d. Every
// successful read pushes the deadline forward. Zero or negative d disables
// sliding expiry (the default).
func WithSlidingExpiry[K comparable, V any](d time.Duration) Option[K, V] {
	return func(o *options[K, V]) {
		o.slidingExpiry = d
	}
}

// WithAbsoluteExpiry expires a key once its value has not been written for d.
// Reads do not postpone it. The default is DefaultAbsoluteExpiry; zero or
// negative d disables absolute expiry entirely.
func WithAbsoluteExpiry[K comparable, V any](d time.Duration) Option[K, V] {
	return func(o *options[K, V]) {
		o.absoluteExpiry = d
	}
}

// WithEvictionCallback registers fn to be called for every evicted entry,
// whether eviction happens lazily on access, during a sweep, or at disposal.
// fn runs synchronously on the caller's goroutine; a panic in fn propagates
// to whoever triggered the eviction.
func WithEvictionCallback[K comparable, V any](fn EvictionCallback[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvict = fn
	}
}

// WithSweepInterval sets the periodic sweep hint consumed by Sweeper.
// The default is DefaultSweepInterval.
func WithSweepInterval[K comparable, V any](d time.Duration) Option[K, V] {
	return func(o *options[K, V]) {
		o.sweepInterval = d
	}
}

// WithMetrics registers a receiver for cache lifecycle events. Passing nil
// restores the default NoopMetrics.
func WithMetrics[K comparable, V any](m Metrics) Option[K, V] {
	return func(o *options[K, V]) {
		if m == nil {
			m = NoopMetrics{}
		}
		o.metrics = m
	}
}

// WithClock overrides the cache's time source. Intended for tests that need
// deterministic expiry.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(o *options[K, V]) {
		if now != nil {
			o.now = now
		}
	}
}
