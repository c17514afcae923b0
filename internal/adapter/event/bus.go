package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, event *domain.OrderEvent) error

func (f HandlerFunc) HandleEvent(ctx context.Context, event *domain.OrderEvent) error {
	return f(ctx, event)
}

// Bus delivers order events to the handlers subscribed to their type. Every
// handler runs, in subscription order, and their errors are combined.
type Bus struct {
	mu       sync.RWMutex
	handlers map[domain.EventType][]port.EventHandler
	logger   *zap.Logger
}

var _ port.EventPublisher = (*Bus)(nil)

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[domain.EventType][]port.EventHandler),
		logger:   logger,
	}
}

func (b *Bus) Subscribe(eventType domain.EventType, handler port.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *Bus) Publish(ctx context.Context, event *domain.OrderEvent) error {
	if event == nil {
		return nil
	}
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	b.logger.Debug("Publish event",
		zap.String("type", string(event.Type)),
		zap.String("id", event.ID),
		zap.Int("handlers", len(handlers)))

	var result *multierror.Error
	for i, h := range handlers {
		if err := h.HandleEvent(ctx, event); err != nil {
			result = multierror.Append(result, fmt.Errorf("handler #%d: %w", i, err))
		}
	}
	return result.ErrorOrNil()
}
