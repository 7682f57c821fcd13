package localcache

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/ZaguanLabs/localcache/cache"
)

// Source supplies localized strings for ids the catalog has not resolved
// yet: a string table, bundle files, a database, whatever the host has.
type Source interface {
	Load(ctx context.Context, id string) (LocalizedString, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, id string) (LocalizedString, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context, id string) (LocalizedString, error) {
	return f(ctx, id)
}

// Catalog resolves string ids to text for one locale. Resolved text lives in
// an expiring cache; misses load through the Source, with concurrent loads
// for the same id collapsed into a single call.
type Catalog struct {
	locale   string
	fallback string
	source   Source
	cache    *cache.Synced[string, string]
	static   map[string]LocalizedString
	sf       singleflight.Group
}

// CatalogOption is a functional option for configuring a Catalog.
type CatalogOption func(*Catalog)

// WithCache sets the cache holding resolved text. Without it the catalog
// creates a cache with default expiry (one hour absolute).
func WithCache(c *cache.Synced[string, string]) CatalogOption {
	return func(cat *Catalog) {
		cat.cache = c
	}
}

// WithFallbackLocale sets an intermediate fallback: when the catalog's
// locale has no text for an entry, the fallback locale's field is tried
// before the final English fallback.
func WithFallbackLocale(code string) CatalogOption {
	return func(cat *Catalog) {
		cat.fallback = MatchLocale(code)
	}
}

// WithStaticEntries preloads localized strings that never go through the
// Source. Useful for built-in text shipped with the binary.
func WithStaticEntries(entries map[string]LocalizedString) CatalogOption {
	return func(cat *Catalog) {
		for id, ls := range entries {
			cat.static[id] = ls
		}
	}
}

// NewCatalog creates a catalog for the given locale code. source may be nil
// when every id is covered by WithStaticEntries.
func NewCatalog(locale string, source Source, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		locale: MatchLocale(locale),
		source: source,
		static: make(map[string]LocalizedString),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.NewSynced[string, string]()
	}
	return c
}

// Locale returns the catalog's resolved locale code.
func (c *Catalog) Locale() string {
	return c.locale
}

// Resolve returns the text for id in the catalog's locale. Cached text is
// returned as long as it is fresh; stale or missing text is loaded, resolved
// through the locale fallback rule and cached again.
func (c *Catalog) Resolve(ctx context.Context, id string) (string, error) {
	key := cacheKey(id, c.locale)
	// Expiry first: Lookup refreshes the last-access time, which would
	// revive an entry already past its sliding threshold.
	if !c.cache.IsExpired(key) {
		if text, err := c.cache.Lookup(key); err == nil {
			return text, nil
		}
	}

	text, err := c.load(ctx, id)
	if err != nil {
		return "", err
	}
	if err := c.cache.AddOrUpdate(key, func(string) (string, error) {
		return text, nil
	}); err != nil {
		return "", err
	}
	return text, nil
}

// load fetches id from the static table or the source. Concurrent source
// loads for the same id are deduplicated.
func (c *Catalog) load(ctx context.Context, id string) (string, error) {
	if ls, ok := c.static[id]; ok {
		return c.localize(ls), nil
	}
	if c.source == nil {
		return "", &UnknownIDError{ID: id}
	}

	v, err, _ := c.sf.Do(id, func() (any, error) {
		return c.source.Load(ctx, id)
	})
	if err != nil {
		logger().Warn("catalog source load failed", "id", id, "error", err)
		return "", &SourceError{ID: id, Cause: err}
	}
	return c.localize(v.(LocalizedString)), nil
}

// localize applies the catalog's fallback chain: the configured locale's
// field, then the fallback locale's field if one is set, then English.
func (c *Catalog) localize(ls LocalizedString) string {
	if text := ls.field(c.locale); text != "" {
		return text
	}
	if c.fallback != "" {
		if text := ls.field(c.fallback); text != "" {
			return text
		}
	}
	return ls.English
}

// Invalidate drops the cached text for id, forcing the next Resolve to load
// again. Reports whether anything was cached.
func (c *Catalog) Invalidate(id string) bool {
	return c.cache.Remove(cacheKey(id, c.locale))
}

// Dispose tears down the cache, evicting all cached text. Only the first
// call has effect; the catalog keeps working against the emptied cache.
func (c *Catalog) Dispose() {
	c.cache.Dispose()
}

// cacheKey builds the cache key for a string id resolved in a locale.
func cacheKey(id, locale string) string {
	return id + ":" + locale
}
