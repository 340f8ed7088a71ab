package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisChannel pushes slot updates through Redis pub/sub so that other
// frontends (or other instances of the UI push layer) can relay them.
type RedisChannel struct {
	client *redis.Client
}

func NewRedisChannel(addr string, db int) *RedisChannel {
	return &RedisChannel{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		}),
	}
}

func (c *RedisChannel) Publish(ctx context.Context, topic string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = c.client.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (c *RedisChannel) Close() error {
	return c.client.Close()
}
