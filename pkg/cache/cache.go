package cache

import (
	"context"
	"time"
)

// Cache is the injectable TTL store used by the shipping pipeline. Lookups
// that used to live in ad-hoc module-level maps go through this interface so
// tests can control time and contents deterministically.
type Cache interface {
	// Get returns the value and whether the key was present and unexpired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for the given TTL. A zero TTL stores forever.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix removes every key sharing the prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
