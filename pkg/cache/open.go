package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Options selects and configures a cache backend.
type Options struct {
	Backend string
	Dir     string // file backend; empty means DefaultDir()
	Redis   RedisOptions
	Mongo   MongoOptions
}

// Open builds the configured backend wrapped with observability hooks.
func Open(ctx context.Context, opts Options) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch strings.ToLower(opts.Backend) {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		dir := opts.Dir
		if dir == "" {
			if dir, err = DefaultDir(); err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
		}
		c, err = NewFileCache(dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, opts.Redis)
	case BackendMongo:
		c, err = NewMongoCache(ctx, opts.Mongo)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (valid: none, file, redis, mongo)", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(c), nil
}
