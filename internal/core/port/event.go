package port

import (
	"context"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
)

//go:generate mockgen -source=event.go -destination=mock/event.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.OrderEvent) error
}

type EventHandler interface {
	HandleEvent(ctx context.Context, event *domain.OrderEvent) error
}
