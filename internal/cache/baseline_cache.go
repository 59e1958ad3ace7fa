package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"poetiq/internal/model"
)

const baselineKey = "baseline:national"

// BaselineCache pins the national baseline snapshot between dataset loads.
// It is invalidated explicitly; there is no implicit recompute besides TTL
// expiry.
type BaselineCache interface {
	Get(ctx context.Context) (*model.BaselineSnapshot, error)
	Set(ctx context.Context, snapshot *model.BaselineSnapshot) error
	Invalidate(ctx context.Context) error
}

type baselineCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBaselineCache(client *redis.Client) BaselineCache {
	return &baselineCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *baselineCache) Get(ctx context.Context) (*model.BaselineSnapshot, error) {
	data, err := c.client.Get(ctx, baselineKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot model.BaselineSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *baselineCache) Set(ctx context.Context, snapshot *model.BaselineSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, baselineKey, data, c.ttl).Err()
}

func (c *baselineCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, baselineKey).Err()
}
