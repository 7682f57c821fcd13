package cache

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSweeper_EvictsExpiredEntries(t *testing.T) {
	var evictions atomic.Int32
	c := NewSynced(
		WithAbsoluteExpiry[string, int](10*time.Millisecond),
		WithSweepInterval[string, int](20*time.Millisecond),
		WithEvictionCallback(func(string, int) { evictions.Add(1) }),
	)

	if _, err := c.GetOrAdd("a", constant[string](1)); err != nil {
		t.Fatalf("GetOrAdd failed: %v", err)
	}

	s := NewSweeper(c)
	defer s.Close()

	// Generous deadline: the entry expires after 10ms and the sweeper runs
	// every 20ms, so well within a second it must be gone.
	deadline := time.After(2 * time.Second)
	for c.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not evict the expired entry in time")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if evictions.Load() != 1 {
		t.Errorf("eviction callback fired %d times, want 1", evictions.Load())
	}
}

func TestSweeper_LeavesFreshEntries(t *testing.T) {
	c := NewSynced(
		WithAbsoluteExpiry[string, int](time.Hour),
		WithSweepInterval[string, int](10*time.Millisecond),
	)
	if _, err := c.GetOrAdd("a", constant[string](1)); err != nil {
		t.Fatalf("GetOrAdd failed: %v", err)
	}

	s := NewSweeper(c)
	time.Sleep(50 * time.Millisecond)
	s.Close()

	if c.Len() != 1 {
		t.Errorf("fresh entry was swept; Len = %d, want 1", c.Len())
	}
}

func TestSweeper_CloseIdempotent(t *testing.T) {
	c := NewSynced[string, int]()
	s := NewSweeper(c)

	s.Close()
	s.Close() // must not panic or block
}
