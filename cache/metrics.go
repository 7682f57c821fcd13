package cache

// Metrics receives cache lifecycle events. GetOrAdd reports Hit and Miss;
// every stale detection reports Expire; every callback-firing removal,
// disposal included, reports Eviction. Implementations must be safe for
// concurrent use when the cache is shared through Synced.
type Metrics interface {
	// Hit is called when GetOrAdd returns an existing fresh value.
	Hit()

	// Miss is called when GetOrAdd has to build a value.
	Miss()

	// Eviction is called for every evicted entry.
	Eviction()

	// Expire is called when a stale entry is detected and evicted.
	Expire()
}

// NoopMetrics discards all events. It is the default, so the cache never
// needs nil checks around its metrics.
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
