// Package redisx opens the shared Redis client. Redis is an optional
// collaborator here (reference cache, rate limiting); an empty address
// means the app runs without it.
package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"previplan/internal/config"
)

type Client = redis.Client

// Open connects and pings Redis. Returns a nil client with a no-op
// closer when no address is configured.
func Open(cfg *config.Config) (*Client, func(), error) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, func() {}, err
	}
	return rdb, func() { _ = rdb.Close() }, nil
}
