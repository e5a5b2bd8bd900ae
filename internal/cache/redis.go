package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/aislechef-backend/internal/config"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

// Observer receives cache hit and miss notifications.
type Observer interface {
	ObserveCache(name string, hit bool)
}

type redisCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
	obs Observer
}

// NewRedis connects to Redis and pings it before returning.
func NewRedis(cfg config.RedisConfig, log *logger.Logger, obs Observer) (RouteCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := cfg.RouteTTL.Duration
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &redisCache{
		log: log.With("service", "RouteCache"),
		rdb: rdb,
		ttl: ttl,
		obs: obs,
	}, nil
}

func (c *redisCache) Get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn("route cache get failed", "key", key, "error", err)
		}
		c.observe(false)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("route cache entry undecodable", "key", key, "error", err)
		c.observe(false)
		return false
	}
	c.observe(true)
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		c.log.Warn("route cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("route cache set failed", "key", key, "error", err)
	}
}

func (c *redisCache) Close() error { return c.rdb.Close() }

func (c *redisCache) observe(hit bool) {
	if c.obs != nil {
		c.obs.ObserveCache("route", hit)
	}
}
