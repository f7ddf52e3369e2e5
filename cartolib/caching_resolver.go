package cartolib

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is plenty for any HAR file a human exports, and
// small enough to stay cheap when the resolver lives in a long
// running server.
const DefaultCacheSize = 16384

type cacheEntry struct {
	point GeoPoint
	err   error
}

type cachingResolver struct {
	resolver Resolver
	cache    *lru.Cache
}

func (c cachingResolver) Name() string {
	return c.resolver.Name()
}

func (c cachingResolver) Resolve(ctx context.Context, addr string) (GeoPoint, error) {
	if value, ok := c.cache.Get(addr); ok {
		entry := value.(cacheEntry)

		return entry.point, entry.err
	}

	point, err := c.resolver.Resolve(ctx, addr)

	// Transient failures must not poison the cache: a later retry
	// of the same address is allowed to succeed.
	if err == nil || errors.Is(err, ErrUnresolvedAddress) {
		c.cache.Add(addr, cacheEntry{point: point, err: err})
	}

	return point, err
}

// NewCachingResolver decorates a resolver with memoization keyed by
// the literal input string, so callers must pass a canonical textual
// form for the cache to be effective. Successful points and terminal
// ErrUnresolvedAddress outcomes are remembered for the rest of the
// process lifetime or until evicted by the LRU bound.
func NewCachingResolver(resolver Resolver, size int) Resolver {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		panic(err)
	}

	return cachingResolver{
		resolver: resolver,
		cache:    cache,
	}
}
