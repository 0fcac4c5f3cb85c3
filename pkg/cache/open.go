package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options selects and configures a cache backend.
type Options struct {
	Backend string // "none", "file" or "redis"; empty means "file"
	Dir     string // FileCache root
	Redis   RedisConfig
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory required")
		}
		return NewFileCache(opts.Dir)
	case BackendRedis:
		if opts.Redis.Addr == "" {
			return nil, fmt.Errorf("redis cache: address required")
		}
		return NewRedisCache(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
