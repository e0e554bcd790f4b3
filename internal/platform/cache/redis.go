package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
)

// RedisRemote shares cached reports between instances. Values are msgpack
// encoded under prefix+key.
type RedisRemote struct {
	client *redis.Client
	prefix string
	logger *logging.Logger
}

func NewRedisRemote(ctx context.Context, redisURL, prefix string, logger *logging.Logger) (*RedisRemote, error) {
	if logger == nil {
		logger = logging.Default()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisRemote{client: client, prefix: prefix, logger: logger}, nil
}

func (r *RedisRemote) Fetch(ctx context.Context, key string, dst any) bool {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		r.logger.WarnContext(ctx, "redis cache read failed", "key", key, "error", err)
		return false
	}
	if err := Decode(raw, dst); err != nil {
		r.logger.WarnContext(ctx, "redis cache entry unreadable", "key", key, "error", err)
		return false
	}
	return true
}

func (r *RedisRemote) Store(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := Encode(value)
	if err != nil {
		r.logger.WarnContext(ctx, "redis cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "redis cache write failed", "key", key, "error", err)
	}
}

func (r *RedisRemote) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRemote) Close() error {
	return r.client.Close()
}
