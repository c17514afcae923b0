package port

import (
	"context"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type OrderService interface {
	GetByIDs(ctx context.Context, ids []string, group domain.ResponseGroup) ([]*domain.CustomerOrder, error)
	GetByID(ctx context.Context, id string, group domain.ResponseGroup) (*domain.CustomerOrder, error)
	SaveChanges(ctx context.Context, orders []*domain.CustomerOrder) error
	Delete(ctx context.Context, ids []string) error
}

type OrderSearchService interface {
	Search(ctx context.Context, criteria domain.OrderSearchCriteria) (*domain.OrderSearchResult, error)
}

type TotalsCalculator interface {
	CalculateTotals(order *domain.CustomerOrder) error
}
