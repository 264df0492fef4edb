// Package cache provides the short-lived key/value store used for hot link
// lookups and click dedup windows. Two drivers exist, redis and memory; the
// driver is chosen once at startup from config.
package cache

import (
	"context"
	"fmt"
	"time"

	"afftrack/config"
)

// Cache is the capability surface both drivers implement.
type Cache interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX sets the key only if absent and reports whether it did.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// New selects a driver by name.
func New(ctx context.Context, cfg *config.CacheConfig) (Cache, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(ctx, cfg)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
