package cache

import (
	"context"
	"testing"
	"time"

	"nirman/internal/config"
	"nirman/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis_NoAddress(t *testing.T) {
	assert.Nil(t, ConnectRedis(context.Background(), config.RedisConfig{}))
}

func TestNewRedisUserCache_TTL(t *testing.T) {
	assert.Equal(t, defaultTTL, NewRedisUserCache(nil, 0).ttl)
	assert.Equal(t, 5*time.Minute, NewRedisUserCache(nil, 5).ttl)
}

func TestRedisUserCache_DisabledPassesThrough(t *testing.T) {
	c := NewRedisUserCache(nil, 10)

	ref, ok, err := c.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, ref.ID)

	assert.NoError(t, c.Set(context.Background(), entities.UserRef{ID: "u-1", Name: "Asha"}))
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "user:u-1:ref", userKey("u-1"))
}
