package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	orderCacheToken    = "order:"
	orderSearchRegion  = "region:order-search"
	orderServiceName   = "OrderService"
	searchServiceName  = "OrderSearchService"
	defaultSearchCount = 20
	maxSearchCount     = 100
)

// OrderTokens returns the cache invalidation tokens of the given order ids.
func OrderTokens(ids ...string) []string {
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, orderCacheToken+id)
	}
	return tokens
}

// SearchRegionToken expires every cached order search page.
func SearchRegionToken() string {
	return orderSearchRegion
}

type Dependencies struct {
	Repository port.OrderRepository
	Cache      port.Cache
	Publisher  port.EventPublisher
	Stores     port.StoreService
	Numbers    port.UniqueNumberGenerator
	Shipping   port.ShippingMethodsSearchService
	Payment    port.PaymentMethodsSearchService
	Totals     port.TotalsCalculator
}

// Service persists customer orders and serves them through a read-through
// cache.
type Service struct {
	repo       port.OrderRepository
	cache      port.Cache
	publisher  port.EventPublisher
	totals     port.TotalsCalculator
	numbers    *NumberAssigner
	hydrator   *DependencyHydrator
	reconciler *ChangeReconciler
	logger     *zap.Logger
}

func NewService(deps Dependencies, logger *zap.Logger) (*Service, error) {
	if deps.Repository == nil || deps.Cache == nil || deps.Publisher == nil ||
		deps.Stores == nil || deps.Numbers == nil || deps.Shipping == nil || deps.Payment == nil {
		return nil, fmt.Errorf("order service: missing dependency")
	}
	totals := deps.Totals
	if totals == nil {
		totals = NewTotalsCalculator()
	}

	return &Service{
		repo:       deps.Repository,
		cache:      deps.Cache,
		publisher:  deps.Publisher,
		totals:     totals,
		numbers:    NewNumberAssigner(deps.Stores, deps.Numbers, logger.Named("Numbers")),
		hydrator:   NewDependencyHydrator(deps.Shipping, deps.Payment),
		reconciler: NewChangeReconciler(totals),
		logger:     logger,
	}, nil
}

// GetByIDs returns the orders found among ids. Missing ids are skipped.
func (s *Service) GetByIDs(ctx context.Context, ids []string,
	group domain.ResponseGroup) ([]*domain.CustomerOrder, error) {
	if len(ids) == 0 {
		return []*domain.CustomerOrder{}, nil
	}

	key := cacheKey(orderServiceName, "GetByIDs", strings.Join(ids, ","), group.String())
	// A token for every requested id, found or not: a cached miss must be
	// expired when the order is created later.
	value, err := s.cache.GetOrCreateExclusive(ctx, key, OrderTokens(ids...),
		func(ctx context.Context) (any, error) {
			return s.loadOrders(ctx, ids, group)
		})
	if err != nil {
		return nil, err
	}

	cached := value.([]*domain.CustomerOrder)
	result := make([]*domain.CustomerOrder, 0, len(cached))
	for _, o := range cached {
		result = append(result, o.Clone())
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id string,
	group domain.ResponseGroup) (*domain.CustomerOrder, error) {
	orders, err := s.GetByIDs(ctx, []string{id}, group)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrDataNotFound
	}
	return orders[0], nil
}

func (s *Service) loadOrders(ctx context.Context, ids []string,
	group domain.ResponseGroup) ([]*domain.CustomerOrder, error) {
	uow, err := s.repo.UnitOfWork(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("open read unit of work: %w", err)
	}
	defer s.release(ctx, uow)

	entities, err := uow.GetByIDs(ctx, ids, group)
	if err != nil {
		s.logger.Error("Load orders", zap.Strings("ids", ids), zap.Error(err))
		return nil, fmt.Errorf("load orders: %w", err)
	}

	orders := make([]*domain.CustomerOrder, 0, len(entities))
	for _, e := range entities {
		order, err := e.ToModel()
		if err != nil {
			s.logger.Warn("Skip order that cannot be converted", zap.String("id", e.ID), zap.Error(err))
			continue
		}
		if group.IsFull() {
			if err := s.totals.CalculateTotals(order); err != nil {
				return nil, err
			}
		}
		if err := s.hydrator.LoadDependencies(ctx, order); err != nil {
			return nil, err
		}
		order.ReduceDetails(group)
		orders = append(orders, order)
	}

	s.logger.Debug("Orders loaded", zap.Int("requested", len(ids)), zap.Int("found", len(orders)))
	return orders, nil
}

// SaveChanges creates new orders and merges existing ones with their stored
// state. Either every order is committed or none is.
func (s *Service) SaveChanges(ctx context.Context, orders []*domain.CustomerOrder) error {
	if err := validateOrders(orders); err != nil {
		return err
	}

	pkMap := entity.NewPrimaryKeyMap()
	uow, err := s.repo.UnitOfWork(ctx, false)
	if err != nil {
		return fmt.Errorf("open unit of work: %w", err)
	}
	defer s.release(ctx, uow)

	stored, err := s.loadStored(ctx, uow, orders)
	if err != nil {
		return err
	}

	entries := make([]*domain.ChangedEntry, 0, len(orders))
	for _, order := range orders {
		original := stored[order.ID]
		s.reconciler.InheritNumbers(order, original)

		if err := s.numbers.EnsureNumbers(ctx, order); err != nil {
			return err
		}

		entry, added, err := s.reconciler.Reconcile(order, original, pkMap)
		if err != nil {
			return err
		}
		// For a modified order NewEntry is the merged state, not the input.
		if err := s.hydrator.LoadDependencies(ctx, entry.NewEntry); err != nil {
			return err
		}
		if added != nil {
			uow.Add(added)
		}
		entries = append(entries, entry)
	}

	if err := s.publisher.Publish(ctx, newOrderEvent(domain.OrderChangeEvent, entries)); err != nil {
		s.logger.Warn("Order change rejected", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrEventVeto, err)
	}

	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Commit orders", zap.Error(err))
		return fmt.Errorf("commit orders: %w", err)
	}
	pkMap.ResolvePrimaryKeys()

	s.publishChanged(ctx, entries)

	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	s.expire(ctx, ids)

	return nil
}

// loadStored fetches the stored counterparts of all non transient orders in
// one round trip.
func (s *Service) loadStored(ctx context.Context, uow port.OrderUnitOfWork,
	orders []*domain.CustomerOrder) (map[string]*entity.Order, error) {
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		if !order.IsTransient() {
			ids = append(ids, order.ID)
		}
	}
	stored := make(map[string]*entity.Order, len(ids))
	if len(ids) == 0 {
		return stored, nil
	}

	entities, err := uow.GetByIDs(ctx, ids, domain.ResponseGroupFull)
	if err != nil {
		s.logger.Error("Load stored orders", zap.Strings("ids", ids), zap.Error(err))
		return nil, fmt.Errorf("load stored orders: %w", err)
	}
	for _, e := range entities {
		stored[e.ID] = e
	}
	return stored, nil
}

// Delete removes the orders with the given ids. Unknown ids are ignored.
func (s *Service) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no order ids to delete", domain.ErrValidation)
	}

	orders, err := s.GetByIDs(ctx, ids, domain.ResponseGroupFull)
	if err != nil {
		return err
	}
	entries := make([]*domain.ChangedEntry, 0, len(orders))
	for _, order := range orders {
		entries = append(entries, &domain.ChangedEntry{NewEntry: order, EntryState: domain.EntryStateDeleted})
	}

	if err := s.publisher.Publish(ctx, newOrderEvent(domain.OrderChangeEvent, entries)); err != nil {
		s.logger.Warn("Order delete rejected", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrEventVeto, err)
	}

	uow, err := s.repo.UnitOfWork(ctx, false)
	if err != nil {
		return fmt.Errorf("open unit of work: %w", err)
	}
	defer s.release(ctx, uow)

	if err := uow.RemoveByIDs(ctx, ids); err != nil {
		s.logger.Error("Remove orders", zap.Strings("ids", ids), zap.Error(err))
		return fmt.Errorf("remove orders: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Commit order removal", zap.Error(err))
		return fmt.Errorf("commit order removal: %w", err)
	}

	s.publishChanged(ctx, entries)
	s.expire(ctx, ids)

	return nil
}

// publishChanged delivers the post commit event. The changes are durable at
// this point, so a failing subscriber is only logged. Subscribers get copies:
// callers keep mutating their orders after SaveChanges returns.
func (s *Service) publishChanged(ctx context.Context, entries []*domain.ChangedEntry) {
	snapshot := make([]*domain.ChangedEntry, 0, len(entries))
	for _, e := range entries {
		snapshot = append(snapshot, &domain.ChangedEntry{
			NewEntry:   e.NewEntry.Clone(),
			OldEntry:   e.OldEntry.Clone(),
			EntryState: e.EntryState,
		})
	}
	if err := s.publisher.Publish(ctx, newOrderEvent(domain.OrderChangedEvent, snapshot)); err != nil {
		s.logger.Error("Publish order changed event", zap.Error(err))
	}
}

func (s *Service) expire(ctx context.Context, ids []string) {
	tokens := append(OrderTokens(ids...), SearchRegionToken())
	s.cache.Expire(ctx, tokens...)
}

func (s *Service) release(ctx context.Context, uow port.OrderUnitOfWork) {
	if err := uow.Rollback(ctx); err != nil {
		s.logger.Warn("Release unit of work", zap.Error(err))
	}
}

func validateOrders(orders []*domain.CustomerOrder) error {
	if len(orders) == 0 {
		return fmt.Errorf("%w: no orders to save", domain.ErrValidation)
	}
	seen := make(map[string]struct{}, len(orders))
	for i, order := range orders {
		if order == nil {
			return fmt.Errorf("%w: order #%d is nil", domain.ErrValidation, i)
		}
		if !order.IsTransient() {
			if _, ok := seen[order.ID]; ok {
				return fmt.Errorf("%w: order %s is saved twice", domain.ErrValidation, order.ID)
			}
			seen[order.ID] = struct{}{}
		}
		if err := validateCurrency(order); err != nil {
			return err
		}
	}
	return nil
}

func validateCurrency(order *domain.CustomerOrder) error {
	if order.Currency == "" {
		return nil
	}
	mismatch := func(currency string) bool {
		return currency != "" && !strings.EqualFold(currency, order.Currency)
	}
	for _, s := range order.Shipments {
		if mismatch(s.Currency) {
			return fmt.Errorf("%w: shipment %s: %w", domain.ErrValidation, s.Number, domain.ErrCurrencyMismatch)
		}
	}
	for _, p := range order.InPayments {
		if mismatch(p.Currency) {
			return fmt.Errorf("%w: payment %s: %w", domain.ErrValidation, p.Number, domain.ErrCurrencyMismatch)
		}
	}
	return nil
}

func newOrderEvent(eventType domain.EventType, entries []*domain.ChangedEntry) *domain.OrderEvent {
	return &domain.OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Entries:    entries,
		OccurredAt: time.Now().UTC(),
	}
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
