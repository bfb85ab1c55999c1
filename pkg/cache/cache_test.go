package cache

import (
	"context"
	"testing"
	"time"

	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	c := NewMemory(logger.New("error")).(*cache)
	c.now = func() time.Time { return now }

	require.NoError(t, c.SaveObj(ctx, "branches:ST1", entry{Name: "Main"}, time.Minute))

	var got entry
	ok, err := c.GetObj(ctx, "branches:ST1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Main", got.Name)

	now = now.Add(time.Minute)
	ok, err = c.GetObj(ctx, "branches:ST1", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(logger.New("error"))

	var got entry
	ok, err := c.GetObj(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	v := viper.New()
	v.Set("redis.addrs", []string{mr.Addr()})
	v.Set("redis.prefix", "test")

	c, err := New(Params{Config: config.FromViper(v), Logger: logger.New("error")})
	require.NoError(t, err)
	_, isRedis := c.(*redisCache)
	require.True(t, isRedis)

	require.NoError(t, c.SaveObj(ctx, "products:ST1:30", entry{Name: "Latte"}, time.Minute))
	assert.True(t, mr.Exists("test.products:ST1:30"))

	var got entry
	ok, err := c.GetObj(ctx, "products:ST1:30", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Latte", got.Name)

	mr.FastForward(2 * time.Minute)
	ok, err = c.GetObj(ctx, "products:ST1:30", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisUnavailable(t *testing.T) {
	v := viper.New()
	v.Set("redis.addrs", []string{"127.0.0.1:1"})

	_, err := redis.New(redis.Params{Config: config.FromViper(v)})
	assert.Error(t, err)
}

func TestNewWithoutRedisUsesMemory(t *testing.T) {
	c, err := New(Params{Config: config.FromViper(viper.New()), Logger: logger.New("error")})
	require.NoError(t, err)
	_, isMemory := c.(*cache)
	assert.True(t, isMemory)
}
