package refcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"previplan/internal/engine/schema"
)

// Redis is a Cache backed by a shared Redis instance, so several API
// replicas see the same invalidations. Entries carry a TTL as a safety
// net against missed invalidations.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis builds a Redis cache. ttl <= 0 defaults to 5 minutes.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Redis{rdb: rdb, ttl: ttl}
}

func key(entityType string) string { return "refs:" + entityType }

func (r *Redis) Get(ctx context.Context, entityType string) ([]schema.Record, bool, error) {
	raw, err := r.rdb.Get(ctx, key(entityType)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []schema.Record
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *Redis) Put(ctx context.Context, entityType string, items []schema.Record) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key(entityType), raw, r.ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context, entityType string) error {
	return r.rdb.Del(ctx, key(entityType)).Err()
}
