package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nirman/internal/config"
	"nirman/internal/domain/entities"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultTTL = 30 * time.Minute

// ConnectRedis returns nil when no address is configured or the server does
// not answer a ping. Callers treat a nil client as "cache disabled".
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		logger.Warn(ctx, "[cache] redis address not set, user cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error(ctx, "[cache] redis ping failed, user cache disabled", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}

	logger.Info(ctx, "[cache] connected to redis", zap.String("addr", cfg.Addr))
	return rdb
}

// RedisUserCache stores resolved user display fields as JSON.
type RedisUserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IUserCache = (*RedisUserCache)(nil)

func NewRedisUserCache(rdb *redis.Client, ttlMinutes int) *RedisUserCache {
	ttl := defaultTTL
	if ttlMinutes > 0 {
		ttl = time.Duration(ttlMinutes) * time.Minute
	}
	return &RedisUserCache{rdb: rdb, ttl: ttl}
}

func userKey(id string) string {
	return "user:" + id + ":ref"
}

func (c *RedisUserCache) Get(ctx context.Context, id string) (entities.UserRef, bool, error) {
	if c == nil || c.rdb == nil {
		return entities.UserRef{}, false, nil
	}

	raw, err := c.rdb.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.UserRef{}, false, nil
	}
	if err != nil {
		return entities.UserRef{}, false, err
	}

	var ref entities.UserRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		// a corrupt entry is a miss; the next Set overwrites it
		return entities.UserRef{}, false, nil
	}
	return ref, true, nil
}

func (c *RedisUserCache) Set(ctx context.Context, ref entities.UserRef) error {
	if c == nil || c.rdb == nil || ref.ID == "" {
		return nil
	}
	raw, err := json.Marshal(ref)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(ref.ID), raw, c.ttl).Err()
}
