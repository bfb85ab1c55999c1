package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/redis"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
	}

	// ICache keeps decoded upstream responses keyed by request parameters.
	ICache interface {
		SaveObj(ctx context.Context, key string, value interface{}, ttl time.Duration) error
		GetObj(ctx context.Context, key string, value interface{}) (bool, error)
	}

	cache struct {
		logger   logger.Logger
		now      func() time.Time
		expires  map[string]time.Time
		memCache map[string][]byte
		m        sync.RWMutex
	}

	redisCache struct {
		client redis.Client
	}
)

// New returns a redis backed cache when redis.addrs is configured and an
// in-process map otherwise.
func New(p Params) (ICache, error) {
	if len(p.Config.GetStringSlice("redis.addrs")) == 0 {
		return NewMemory(p.Logger), nil
	}

	client, err := redis.New(redis.Params{Config: p.Config})
	if err != nil {
		p.Logger.Error(context.Background(), "err on redis.New", zap.Error(err))
		return nil, err
	}
	p.Logger.Info(context.Background(), "response cache backed by redis",
		zap.Strings("addrs", p.Config.GetStringSlice("redis.addrs")))
	return NewRedis(client), nil
}

func NewMemory(l logger.Logger) ICache {
	return &cache{
		logger:   l,
		now:      time.Now,
		memCache: map[string][]byte{},
		expires:  map[string]time.Time{},
	}
}

func NewRedis(client redis.Client) ICache {
	return &redisCache{client: client}
}

func (c *cache) SaveObj(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.memCache[key] = b
	if ttl > 0 {
		c.expires[key] = c.now().Add(ttl)
	} else {
		delete(c.expires, key)
	}
	return nil
}

func (c *cache) GetObj(_ context.Context, key string, value interface{}) (bool, error) {
	c.m.RLock()
	cacheVal, ok := c.memCache[key]
	exp, hasExp := c.expires[key]
	c.m.RUnlock()

	if !ok {
		return false, nil
	}
	if hasExp && !c.now().Before(exp) {
		c.m.Lock()
		delete(c.memCache, key)
		delete(c.expires, key)
		c.m.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(cacheVal, value); err != nil {
		c.logger.Warn(context.Background(), "err on cache json.Unmarshal", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (c *redisCache) SaveObj(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.client.SetObj(ctx, key, value, ttl)
}

func (c *redisCache) GetObj(ctx context.Context, key string, value interface{}) (bool, error) {
	err := c.client.FindObj(ctx, key, value)
	if errors.Is(err, redis.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
