package cache

import (
	"context"
	"sync"
	"time"
)

// Sweeper periodically evicts expired entries from a Synced cache, so keys
// that are written once and never read again do not linger until the next
// access. Lazy expiry alone never reclaims such entries.
//
// The Sweeper owns its goroutine. Call Close to stop it.
type Sweeper[K comparable, V any] struct {
	cache    *Synced[K, V]
	interval time.Duration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewSweeper starts a background sweep of c at its configured sweep
// interval and returns a handle to stop it.
func NewSweeper[K comparable, V any](c *Synced[K, V]) *Sweeper[K, V] {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Sweeper[K, V]{
		cache:    c,
		interval: c.SweepInterval(),
		cancel:   cancel,
	}
	s.wg.Add(1)
	go s.run(ctx)
	return s
}

func (s *Sweeper[K, V]) run(ctx context.Context) {
	defer s.wg.Done()

	logger().Info("sweeper started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger().Info("sweeper stopped")
			return
		case <-ticker.C:
			if n := s.cache.RemoveExpired(); n > 0 {
				logger().Debug("sweep evicted expired entries", "count", n)
			}
		}
	}
}

// Close stops the background sweep and waits for it to exit. Safe to call
// more than once.
func (s *Sweeper[K, V]) Close() {
	s.cancel()
	s.wg.Wait()
}
