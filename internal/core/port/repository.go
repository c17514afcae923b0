package port

import (
	"context"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type OrderRepository interface {
	// UnitOfWork opens a unit of work. A read only unit does not track the
	// loaded entities and cannot commit. A write unit tracks every loaded or
	// added entity and writes them in a single transaction on Commit.
	UnitOfWork(ctx context.Context, readOnly bool) (OrderUnitOfWork, error)
}

type OrderUnitOfWork interface {
	GetByIDs(ctx context.Context, ids []string, group domain.ResponseGroup) ([]*entity.Order, error)
	Search(ctx context.Context, criteria domain.OrderSearchCriteria) (ids []string, total int, err error)
	Add(order *entity.Order)
	RemoveByIDs(ctx context.Context, ids []string) error
	Commit(ctx context.Context) error
	// Rollback releases the unit of work. It is a no-op after Commit.
	Rollback(ctx context.Context) error
}
