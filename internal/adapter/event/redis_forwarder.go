package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("event queue is full")

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type queuedEvent struct {
	id  string
	raw []byte
}

// RedisForwarder publishes committed order changes to a redis channel. Events
// are encoded when queued, so later changes to the orders are not sent, and
// background workers publish them so the caller never waits on redis.
type RedisForwarder struct {
	rdb         redisPublisher
	channel     string
	queue       chan queuedEvent
	maxAttempts int
	retryAfter  time.Duration
	logger      *zap.Logger
}

func NewRedisForwarder(rdb redisPublisher, channel string, queueSize int, logger *zap.Logger) *RedisForwarder {
	return &RedisForwarder{
		rdb:         rdb,
		channel:     channel,
		queue:       make(chan queuedEvent, queueSize),
		maxAttempts: 3,
		retryAfter:  time.Second,
		logger:      logger,
	}
}

func (f *RedisForwarder) HandleEvent(ctx context.Context, event *domain.OrderEvent) error {
	if event == nil {
		return nil
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}

	select {
	case f.queue <- queuedEvent{id: event.ID, raw: raw}:
		f.logger.Debug("Event queued", zap.String("id", event.ID))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Run starts the workers. They stop when ctx is done.
func (f *RedisForwarder) Run(ctx context.Context, workers int) {
	for range workers {
		go func() {
			for {
				select {
				case event := <-f.queue:
					f.forward(ctx, event)
				case <-ctx.Done():
					f.logger.Debug("Finished forwarder worker")
					return
				}
			}
		}()
	}
}

func (f *RedisForwarder) forward(ctx context.Context, event queuedEvent) {
	for attempt := 1; ; attempt++ {
		err := f.rdb.Publish(ctx, f.channel, event.raw).Err()
		if err == nil {
			f.logger.Debug("Event forwarded", zap.String("id", event.id), zap.Int("attempt", attempt))
			return
		}
		if attempt >= f.maxAttempts {
			f.logger.Error("Drop event after failed attempts",
				zap.String("id", event.id), zap.Int("attempts", attempt), zap.Error(err))
			return
		}

		f.logger.Warn("Retry event forwarding", zap.String("id", event.id), zap.Error(err))
		t := time.NewTimer(f.retryAfter)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return
		}
	}
}
