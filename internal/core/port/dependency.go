package port

import (
	"context"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
)

//go:generate mockgen -source=dependency.go -destination=mock/dependency.go -package=mock
type StoreService interface {
	GetByID(ctx context.Context, storeID string) (*domain.Store, error)
}

type UniqueNumberGenerator interface {
	GenerateNumber(ctx context.Context, template string) (string, error)
}

type ShippingMethodsSearchService interface {
	SearchByStore(ctx context.Context, storeID string) ([]*domain.ShippingMethod, error)
}

type PaymentMethodsSearchService interface {
	SearchByStore(ctx context.Context, storeID string) ([]*domain.PaymentMethod, error)
}
