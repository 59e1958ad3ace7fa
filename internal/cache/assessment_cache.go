package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"poetiq/internal/model"
)

// AssessmentCache keeps the derived per-session assessment view so repeated
// reads between answer saves skip the reference-data lookups.
type AssessmentCache interface {
	Get(ctx context.Context, sessionID string) (*model.Assessment, error)
	Set(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, sessionID string) error
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAssessmentCache(client *redis.Client) AssessmentCache {
	return &assessmentCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *assessmentCache) key(sessionID string) string {
	return "assessment:" + sessionID
}

func (c *assessmentCache) Get(ctx context.Context, sessionID string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var assessment model.Assessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *assessmentCache) Set(ctx context.Context, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessment.SessionID), data, c.ttl).Err()
}

func (c *assessmentCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
