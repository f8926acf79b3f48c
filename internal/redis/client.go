// Package redis owns the connection to the shared Redis deployment that
// backs the account view cache and the event streams. Everything lives in
// logical database 0 so one connection serves both concerns.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
	poolSize     = 10

	connectTimeout = 5 * time.Second
)

// Client wraps the driver client so call sites depend on this package
// rather than on the driver directly.
type Client struct {
	*redis.Client
}

// Connect dials Redis and verifies it with a ping, so a service learns at
// bootstrap whether its cache and event stream are reachable. Callers that
// can run degraded treat the error as a warning rather than fatal.
func Connect(ctx context.Context, addr, password string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		PoolSize:     poolSize,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Client{Client: rdb}, nil
}

func (c *Client) Close() error {
	return c.Client.Close()
}
