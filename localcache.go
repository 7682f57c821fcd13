// Package localcache provides localized game-client strings backed by an
// in-process expiring cache.
//
// LocalizedString holds one translation per supported game-client language
// and resolves a locale code to the matching field, falling back to English.
// Catalog resolves string ids through a Source (your database, bundle files,
// whatever the host supplies) and keeps resolved text in an expiring cache.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/localcache"
//	    "github.com/ZaguanLabs/localcache/cache"
//	)
//
//	func main() {
//	    source := localcache.SourceFunc(func(ctx context.Context, id string) (localcache.LocalizedString, error) {
//	        return loadFromBundle(id)
//	    })
//
//	    catalog := localcache.NewCatalog("fr_FR", source,
//	        localcache.WithCache(cache.NewSynced[string, string](
//	            cache.WithAbsoluteExpiry[string, string](30*time.Minute),
//	        )),
//	    )
//
//	    text, err := catalog.Resolve(context.Background(), "menu.start")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(text) // "Démarrer"
//	}
//
// The cache package can also be used on its own for any expiring key-value
// need; see its documentation.
package localcache
