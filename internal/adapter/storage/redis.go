package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/ordermodule/internal/adapter/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis server of conf.URL.
func NewRedisClient(ctx context.Context, conf *config.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(conf.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
