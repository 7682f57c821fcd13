package localcache

import (
	"context"
	"fmt"
	"testing"

	"github.com/ZaguanLabs/localcache/cache"
)

func BenchmarkForLocale(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sample.ForLocale("fr_FR")
	}
}

func BenchmarkForLocale_Fallback(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sample.ForLocale("ru_RU")
	}
}

func BenchmarkCacheGetOrAdd_Hit(b *testing.B) {
	c := cache.New[string, string]()
	if _, err := c.GetOrAdd("key", func(string) (string, error) {
		return "value", nil
	}); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.GetOrAdd("key", func(string) (string, error) {
			return "value", nil
		}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCacheGetOrAdd_Miss(b *testing.B) {
	c := cache.New[int, int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.GetOrAdd(i, func(k int) (int, error) {
			return k, nil
		}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSyncedGetOrAdd_Parallel(b *testing.B) {
	c := cache.NewSynced[string, int]()
	for i := 0; i < 16; i++ {
		key := fmt.Sprintf("key-%d", i)
		if _, err := c.GetOrAdd(key, func(string) (int, error) {
			return i, nil
		}); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("key-%d", i%16)
			_, _ = c.GetOrAdd(key, func(string) (int, error) {
				return i, nil
			})
			i++
		}
	})
}

func BenchmarkCatalogResolve_Cached(b *testing.B) {
	cat := NewCatalog("fr_FR", nil,
		WithStaticEntries(map[string]LocalizedString{
			"menu.start": {English: "Start", French: "Démarrer"},
		}),
	)
	ctx := context.Background()
	if _, err := cat.Resolve(ctx, "menu.start"); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cat.Resolve(ctx, "menu.start"); err != nil {
			b.Fatal(err)
		}
	}
}
