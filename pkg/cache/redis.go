package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mercadoviva/shipping-backend/pkg/redis"
)

// Redis adapts the shared redis client to the Cache interface so quote
// caching survives process restarts and is shared across instances.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps the provided redis client.
func NewRedis(client *redis.Client) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl)
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...)
}

func (r *Redis) DeletePrefix(ctx context.Context, prefix string) error {
	return r.client.DelByPrefix(ctx, prefix)
}
