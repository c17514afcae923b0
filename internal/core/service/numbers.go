package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"go.uber.org/zap"
)

// NumberAssigner gives every operation of an order graph that has no number
// yet a globally unique one.
type NumberAssigner struct {
	stores    port.StoreService
	generator port.UniqueNumberGenerator
	logger    *zap.Logger
}

func NewNumberAssigner(stores port.StoreService, generator port.UniqueNumberGenerator,
	logger *zap.Logger) *NumberAssigner {
	return &NumberAssigner{
		stores:    stores,
		generator: generator,
		logger:    logger,
	}
}

func (a *NumberAssigner) EnsureNumbers(ctx context.Context, order *domain.CustomerOrder) error {
	var missing []domain.Operation
	for _, op := range domain.FlattenOperations(order) {
		if op.OperationNumber() == "" {
			missing = append(missing, op)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	store, err := a.resolveStore(ctx, order.StoreID)
	if err != nil {
		return err
	}

	for _, op := range missing {
		typeName := op.OperationType()
		template := domain.OperationTypeCode(typeName) + "{0:yyMMdd}-{1:D5}"
		template = store.SettingValue(domain.NumberTemplateSetting(typeName), template)

		number, err := a.generator.GenerateNumber(ctx, template)
		if err != nil {
			return fmt.Errorf("generate %s number: %w", typeName, err)
		}
		op.SetOperationNumber(number)
	}
	return nil
}

// resolveStore returns nil when the order has no store or the store does
// not exist; callers then use the default templates.
func (a *NumberAssigner) resolveStore(ctx context.Context, storeID string) (*domain.Store, error) {
	if storeID == "" {
		return nil, nil
	}
	store, err := a.stores.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			a.logger.Debug("store not found, default number templates used", zap.String("store", storeID))
			return nil, nil
		}
		return nil, fmt.Errorf("resolve store %s: %w", storeID, err)
	}
	return store, nil
}
