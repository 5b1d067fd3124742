package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *redis.Client
}

// New creates a new Redis client
func New(addr, password string, db int) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 2,
		}),
	}
}

// Ping checks the connection, retrying for up to maxElapsed.
func (c *Client) Ping(ctx context.Context, maxElapsed time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed

	err := backoff.Retry(func() error {
		return c.client.Ping(ctx).Err()
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// PushCapped appends data to the list at key and keeps only the last maxLen items.
func (c *Client) PushCapped(ctx context.Context, key string, data []byte, maxLen int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		if maxLen > 0 {
			pipe.LTrim(ctx, key, -maxLen, -1)
		}
		return nil
	})
	return err
}

// Tail returns the last n items of the list at key, oldest first.
func (c *Client) Tail(ctx context.Context, key string, n int64) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return c.client.LRange(ctx, key, -n, -1).Result()
}

// Close closes the Redis connection
func (c *Client) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}
