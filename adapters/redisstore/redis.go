package redisstore

import (
	"context"
	"fmt"

	"github.com/ddd-commerce/backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

// Enabled reports whether a redis address is configured.
func (o Options) Enabled() bool {
	return o.Addr != ""
}

func NewConnection(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cannot ping redis at %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
