// Package redis persists balance records and the transaction log in Redis.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

type config struct {
	keyPrefix string
}

// Option configures the Redis client.
type Option func(*config)

// WithKeyPrefix namespaces every key under prefix, e.g. "tokensend:balance:alice".
func WithKeyPrefix(prefix string) Option {
	return func(c *config) {
		c.keyPrefix = prefix
	}
}

type client struct {
	conn      *redis.Client
	keyPrefix string
}

// key joins the configured prefix and k.
func (c *client) key(k string) string {
	if c.keyPrefix == "" {
		return k
	}
	return fmt.Sprintf("%s:%s", c.keyPrefix, k)
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:      conn,
		keyPrefix: cfg.keyPrefix,
	}, nil
}
