package server

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultCacheSize = 1024
	redisExpiration  = 24 * time.Hour
)

// Cache keeps encoded responses in an in-process LRU, backed by Redis when
// a client is given. Keys are scoped by the catalog fingerprint so a
// restarted process with another catalog never reads old entries.
type Cache struct {
	local  *lru.Cache
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewCache(size int, client *redis.Client, fingerprint string, logger *zap.Logger) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	local, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		local:  local,
		client: client,
		prefix: "diecast:" + fingerprint + ":",
		logger: common.OrNop(logger),
	}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := c.local.Get(key); ok {
		cacheHits.Inc()
		return v.([]byte), true
	}
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	cacheHits.Inc()
	c.local.Add(key, data)
	return data, true
}

func (c *Cache) Set(ctx context.Context, key string, data []byte) {
	c.local.Add(key, data)
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, redisExpiration).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Len() int {
	return c.local.Len()
}

func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
