// Package redis keeps a per-stream parent-pointer cache in sync with committed tree writes.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
)

const keyPrefix = "chat:tree:"

type TreeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Config) (*TreeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return NewWithClient(client, cfg.Redis.TTL), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *TreeCache {
	return &TreeCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *TreeCache) key(streamID string) string {
	return keyPrefix + streamID
}

// ApplySummary records every parent assignment of a committed batch and forgets deleted
// messages. Roots are stored with an empty parent.
func (c *TreeCache) ApplySummary(ctx context.Context, streamID string, summary model.Summary, deleted []string) error {
	if len(summary.Create) == 0 && len(summary.Update) == 0 && len(deleted) == 0 {
		return nil
	}

	key := c.key(streamID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values := make([]interface{}, 0, 2*(len(summary.Create)+len(summary.Update)))
		for _, change := range summary.Create {
			values = append(values, change.ID, parentValue(change.ParentID))
		}
		for _, change := range summary.Update {
			values = append(values, change.ID, parentValue(change.ParentID))
		}
		if len(values) > 0 {
			pipe.HSet(ctx, key, values...)
		}
		if len(deleted) > 0 {
			pipe.HDel(ctx, key, deleted...)
		}
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply summary to tree cache: %v", err)
	}

	return nil
}

func (c *TreeCache) Invalidate(ctx context.Context, streamID string) error {
	if err := c.client.Del(ctx, c.key(streamID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate tree cache: %v", err)
	}
	return nil
}

func (c *TreeCache) Close() error {
	return c.client.Close()
}

func parentValue(parentID *string) string {
	if parentID == nil {
		return ""
	}
	return *parentID
}
