// Package redis wraps the go-redis client used by the catalog.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-retool/internal/errors"
)

const defaultDialTimeout = 5 * time.Second

// Options configures Redis client behavior
type Options struct {
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	Password    string
	DB          int
}

// NewClient creates a Redis client for a single instance. Connections are
// opened lazily; call Ping to check reachability.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}), nil
}

// Ping reports errors.Unavailable when the server cannot be reached.
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}
