package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type expiration struct {
	Origin string   `json:"origin"`
	Tokens []string `json:"tokens"`
}

// RedisRelay spreads cache expirations between instances over a redis
// pub/sub channel.
type RedisRelay struct {
	rdb     *redis.Client
	channel string
	origin  string
	logger  *zap.Logger
}

func NewRedisRelay(rdb *redis.Client, channel string, logger *zap.Logger) *RedisRelay {
	return &RedisRelay{
		rdb:     rdb,
		channel: channel,
		origin:  uuid.NewString(),
		logger:  logger,
	}
}

func (r *RedisRelay) Broadcast(ctx context.Context, tokens []string) error {
	raw, err := json.Marshal(expiration{Origin: r.origin, Tokens: tokens})
	if err != nil {
		return err
	}
	return r.rdb.Publish(ctx, r.channel, raw).Err()
}

// Listen expires the tokens published by other instances in cache until ctx
// is done.
func (r *RedisRelay) Listen(ctx context.Context, cache *MemoryCache) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var msg expiration
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					r.logger.Warn("Bad expiration payload", zap.Error(err))
					continue
				}
				if msg.Origin == r.origin {
					continue
				}
				cache.ExpireLocal(msg.Tokens...)
			}
		}
	}()

	return nil
}
