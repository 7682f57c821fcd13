package localcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ZaguanLabs/localcache/cache"
)

// End-to-end: a catalog over a mutable source, with a short-lived cache and
// an eviction callback observing turnover.
func TestIntegration_CatalogWithExpiringCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}

	var evicted []string
	store := cache.NewSynced(
		cache.WithAbsoluteExpiry[string, string](50*time.Millisecond),
		cache.WithEvictionCallback(func(key string, _ string) {
			evicted = append(evicted, key)
		}),
		cache.WithClock[string, string](clock),
	)

	entries := map[string]LocalizedString{
		"greeting": {English: "Hello", Japanese: "こんにちは"},
	}
	src := SourceFunc(func(_ context.Context, id string) (LocalizedString, error) {
		return entries[id], nil
	})

	cat := NewCatalog("ja_JP", src, WithCache(store))
	ctx := context.Background()

	text, err := cat.Resolve(ctx, "greeting")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if text != "こんにちは" {
		t.Errorf("Resolve returned %q, want こんにちは", text)
	}

	// The source changes; the catalog keeps serving cached text until expiry.
	entries["greeting"] = LocalizedString{English: "Hi", Japanese: "やあ"}
	if text, _ = cat.Resolve(ctx, "greeting"); text != "こんにちは" {
		t.Errorf("fresh cache should serve old text, got %q", text)
	}

	advance(60 * time.Millisecond)
	if text, _ = cat.Resolve(ctx, "greeting"); text != "やあ" {
		t.Errorf("expired cache should reload, got %q", text)
	}
	if len(evicted) != 1 || evicted[0] != "greeting:ja_JP" {
		t.Errorf("evicted keys = %v, want [greeting:ja_JP]", evicted)
	}

	// Teardown evicts the reloaded entry exactly once.
	cat.Dispose()
	cat.Dispose()
	if len(evicted) != 2 {
		t.Errorf("eviction callback fired %d times total, want 2", len(evicted))
	}
}
