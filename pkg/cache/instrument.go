package cache

import (
	"context"
	"time"

	"github.com/matzehuels/logtrack/pkg/observability"
)

// Instrumented reports hits, misses and writes of an inner cache to the
// registered observability hooks.
type Instrumented struct {
	Cache
}

// Instrument wraps c. Wrapping twice is a no-op.
func Instrument(c Cache) Cache {
	if _, ok := c.(*Instrumented); ok {
		return c
	}
	return &Instrumented{Cache: c}
}

// Unwrap returns the wrapped cache.
func (c *Instrumented) Unwrap() Cache { return c.Cache }

// Get implements Cache.
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, KeyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, KeyType(key))
		}
	}
	return data, hit, err
}

// Set implements Cache.
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	}
	return err
}
