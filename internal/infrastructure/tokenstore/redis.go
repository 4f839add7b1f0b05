package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mystore/store-client/internal/core/ports"
)

const DefaultKey = "mystore:access_token"

// kv is the subset of the go-redis client the store needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Redis persists the token under a single key. A zero ttl keeps it until the
// next save or clear.
type Redis struct {
	client kv
	key    string
	ttl    time.Duration
}

var _ ports.TokenStore = (*Redis)(nil)

// NewRedis creates a Redis-backed TokenStore. An empty key falls back to
// DefaultKey.
func NewRedis(client *redis.Client, key string, ttl time.Duration) *Redis {
	return newRedis(client, key, ttl)
}

func newRedis(client kv, key string, ttl time.Duration) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{client: client, key: key, ttl: ttl}
}

func (r *Redis) SaveToken(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (r *Redis) GetToken(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return token, nil
}

func (r *Redis) ClearToken(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
