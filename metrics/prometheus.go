// Package metrics provides a Prometheus-backed implementation of the cache
// package's Metrics interface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ZaguanLabs/localcache/cache"
)

// Collector counts cache lifecycle events as Prometheus counters. All
// counter operations are safe for concurrent use.
type Collector struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	expired   prometheus.Counter
}

// NewCollector registers the cache counters on reg under the given
// namespace and returns the collector. Registering the same namespace twice
// on one registry panics, per Prometheus convention.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of cache hits.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of cache misses.",
		}),
		evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of evicted entries, disposal included.",
		}),
		expired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_expired_total",
			Help:      "Total number of entries evicted because they went stale.",
		}),
	}
}

// Hit implements cache.Metrics.
func (c *Collector) Hit() { c.hits.Inc() }

// Miss implements cache.Metrics.
func (c *Collector) Miss() { c.misses.Inc() }

// Eviction implements cache.Metrics.
func (c *Collector) Eviction() { c.evictions.Inc() }

// Expire implements cache.Metrics.
func (c *Collector) Expire() { c.expired.Inc() }

// Verify Collector implements cache.Metrics.
var _ cache.Metrics = (*Collector)(nil)
