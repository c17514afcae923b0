package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MikeRez0/ordermodule/internal/adapter/cache"
	"github.com/MikeRez0/ordermodule/internal/adapter/client/catalog"
	"github.com/MikeRez0/ordermodule/internal/adapter/event"
	"github.com/MikeRez0/ordermodule/internal/adapter/storage/memory"
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryEnv struct {
	svc    *service.Service
	search *service.SearchService
	repo   *memory.Repository
	bus    *event.Bus

	mu     sync.Mutex
	events []*domain.OrderEvent
}

func newMemoryEnv(t *testing.T) *memoryEnv {
	t.Helper()
	logger := zap.NewNop()

	env := &memoryEnv{
		repo: memory.NewRepository(),
		bus:  event.NewBus(logger),
	}
	record := event.HandlerFunc(func(_ context.Context, e *domain.OrderEvent) error {
		env.mu.Lock()
		defer env.mu.Unlock()
		env.events = append(env.events, e)
		return nil
	})
	env.bus.Subscribe(domain.OrderChangeEvent, record)
	env.bus.Subscribe(domain.OrderChangedEvent, record)

	orderCache := cache.NewMemoryCache(0, logger)
	svc, err := service.NewService(service.Dependencies{
		Repository: env.repo,
		Cache:      orderCache,
		Publisher:  env.bus,
		Stores: memory.NewStoreService(&domain.Store{
			ID:       "b2c",
			Name:     "B2C store",
			Settings: map[string]string{"Order.PaymentInNewNumberTemplate": "PAY{1:D4}"},
		}),
		Numbers:  memory.NewNumberGenerator(),
		Shipping: catalog.DefaultShippingMethods,
		Payment:  catalog.DefaultPaymentMethods,
	}, logger)
	require.NoError(t, err)

	env.svc = svc
	env.search = service.NewSearchService(env.repo, orderCache, svc, logger)
	return env
}

func (env *memoryEnv) eventTypes() []domain.EventType {
	env.mu.Lock()
	defer env.mu.Unlock()
	types := make([]domain.EventType, 0, len(env.events))
	for _, e := range env.events {
		types = append(types, e.Type)
	}
	return types
}

func sampleOrder() *domain.CustomerOrder {
	return &domain.CustomerOrder{
		Status:       domain.OrderStatusPending,
		Currency:     "USD",
		StoreID:      "b2c",
		StoreName:    "B2C store",
		CustomerID:   "c1",
		CustomerName: "Jane Roe",
		Items: []*domain.LineItem{
			{Sku: "A", Name: "Cable", Price: dec("10"), Quantity: 2, Discounts: []*domain.Discount{{Coupon: "SAVE12", DiscountAmount: dec("12")}}},
			{Sku: "B", Name: "Router", Price: dec("100"), Quantity: 2},
		},
		Shipments: []*domain.Shipment{
			{ShipmentMethodCode: "fixedrate", Price: dec("0")},
		},
		InPayments: []*domain.PaymentIn{
			{GatewayCode: "DefaultManualPaymentMethod", Sum: dec("208")},
		},
		Addresses: []*domain.Address{
			{AddressType: domain.AddressTypeShipping, FirstName: "Jane", City: "Berlin", CountryCode: "DEU"},
		},
	}
}

func TestService_SaveAndFetchRoundTrip(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))
	require.NotEmpty(t, order.ID)
	require.NotEmpty(t, order.Items[0].ID)

	assert.True(t, strings.HasPrefix(order.Number, "CO"))
	assert.True(t, strings.HasPrefix(order.Shipments[0].Number, "SH"))
	assert.Equal(t, "PAY0001", order.InPayments[0].Number)

	fetched, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)

	assert.Equal(t, order.Number, fetched.Number)
	assert.Equal(t, order.Status, fetched.Status)
	assert.Equal(t, order.CustomerName, fetched.CustomerName)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, order.Items[0].ID, fetched.Items[0].ID)
	assert.Equal(t, "SAVE12", fetched.Items[0].Discounts[0].Coupon)
	require.Len(t, fetched.Addresses, 1)
	assert.Equal(t, "Berlin", fetched.Addresses[0].City)
	assertDecimal(t, "208", fetched.SubTotal, "SubTotal")
	assertDecimal(t, "208", fetched.Total, "Total")

	require.NotNil(t, fetched.Shipments[0].ShippingMethod)
	assert.Equal(t, "FixedRate", fetched.Shipments[0].ShippingMethod.Code)
	require.NotNil(t, fetched.InPayments[0].PaymentMethod)

	assert.Equal(t, []domain.EventType{domain.OrderChangeEvent, domain.OrderChangedEvent}, env.eventTypes())
}

func TestService_ResponseGroupReducesDetails(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))

	fetched, err := env.svc.GetByID(ctx, order.ID, domain.WithItems)
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 2)
	assert.Nil(t, fetched.Shipments)
	assert.Nil(t, fetched.InPayments)
	assert.Nil(t, fetched.Addresses)
}

func TestService_NumbersAreNeverReassigned(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))
	number, shipment := order.Number, order.Shipments[0].Number

	// full resave
	again, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{again}))

	// partial update without numbers, including a known shipment
	partial := &domain.CustomerOrder{
		ID:        order.ID,
		Comment:   "leave at the door",
		Shipments: []*domain.Shipment{{ID: order.Shipments[0].ID, Status: "Packed"}},
	}
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{partial}))
	assert.Equal(t, number, partial.Number)
	assert.Equal(t, shipment, partial.Shipments[0].Number)

	fetched, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)
	assert.Equal(t, number, fetched.Number)
	assert.Equal(t, shipment, fetched.Shipments[0].Number)
	assert.Equal(t, "Packed", fetched.Shipments[0].Status)
	assert.Equal(t, "leave at the door", fetched.Comment)
}

func TestService_StatusOnlyUpdateKeepsTotal(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))
	before, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)

	update := &domain.CustomerOrder{ID: order.ID, Status: domain.OrderStatusAuthorized}
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{update}))

	after, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAuthorized, after.Status)
	assert.Len(t, after.Items, 2)
	assertDecimal(t, before.Total.String(), after.Total, "Total")
}

func TestService_PartialAddItemRecomputesTotals(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))

	update := &domain.CustomerOrder{
		ID:    order.ID,
		Items: []*domain.LineItem{{Sku: "C", Price: dec("7.5"), Quantity: 2}},
	}
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{update}))
	assertDecimal(t, "223", update.SubTotal, "returned SubTotal")

	after, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)
	assert.Len(t, after.Items, 3)
	assertDecimal(t, "223", after.SubTotal, "SubTotal")
	assertDecimal(t, "223", after.Total, "Total")
}

func TestService_CreatingMissingIDInvalidatesCachedMiss(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	orders, err := env.svc.GetByIDs(ctx, []string{"known-id"}, domain.ResponseGroupFull)
	require.NoError(t, err)
	assert.Empty(t, orders)

	order := sampleOrder()
	order.ID = "known-id"
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))

	orders, err = env.svc.GetByIDs(ctx, []string{"known-id"}, domain.ResponseGroupFull)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "known-id", orders[0].ID)
}

func TestService_UpdateInvalidatesCachedOrder(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))
	cached, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupDefault)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, cached.Status)

	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{
		{ID: order.ID, Status: domain.OrderStatusCompleted},
	}))

	fresh, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupDefault)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, fresh.Status)
}

func TestService_Delete(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	first, second := sampleOrder(), sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{first, second}))
	_, err := env.svc.GetByID(ctx, first.ID, domain.ResponseGroupFull)
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, []string{first.ID, "unknown"}))

	_, err = env.svc.GetByID(ctx, first.ID, domain.ResponseGroupFull)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
	_, err = env.svc.GetByID(ctx, second.ID, domain.ResponseGroupFull)
	assert.NoError(t, err)
	assert.Equal(t, 1, env.repo.Len())

	env.mu.Lock()
	last := env.events[len(env.events)-1]
	env.mu.Unlock()
	assert.Equal(t, domain.OrderChangedEvent, last.Type)
	require.Len(t, last.Entries, 1)
	assert.Equal(t, domain.EntryStateDeleted, last.Entries[0].EntryState)
	assert.Equal(t, first.ID, last.Entries[0].NewEntry.ID)

	assert.ErrorIs(t, env.svc.Delete(ctx, nil), domain.ErrValidation)
}

func TestService_VetoKeepsStoreUntouched(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	env.bus.Subscribe(domain.OrderChangeEvent, event.HandlerFunc(
		func(_ context.Context, e *domain.OrderEvent) error {
			for _, entry := range e.Entries {
				if entry.NewEntry.CustomerID == "blocked" {
					return errors.New("customer is blocked")
				}
			}
			return nil
		}))

	ok, blocked := sampleOrder(), sampleOrder()
	blocked.CustomerID = "blocked"
	err := env.svc.SaveChanges(ctx, []*domain.CustomerOrder{ok, blocked})
	assert.ErrorIs(t, err, domain.ErrEventVeto)
	assert.Equal(t, 0, env.repo.Len())
	assert.Empty(t, ok.ID)
}

func TestSearchService_Search(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	for _, name := range []string{"Jane Roe", "John Doe", "Janet Poe"} {
		o := sampleOrder()
		o.CustomerName = name
		require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{o}))
	}

	result, err := env.search.Search(ctx, domain.OrderSearchCriteria{Keyword: "jan", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	require.Len(t, result.Results, 1)

	next, err := env.search.Search(ctx, domain.OrderSearchCriteria{Keyword: "jan", Start: 1, Count: 1})
	require.NoError(t, err)
	require.Len(t, next.Results, 1)
	assert.NotEqual(t, result.Results[0].ID, next.Results[0].ID)

	all, err := env.search.Search(ctx, domain.OrderSearchCriteria{ResponseGroup: domain.ResponseGroupFull})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)

	// a save expires every cached page
	o := sampleOrder()
	o.CustomerName = "Jan Kowalski"
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{o}))

	result, err = env.search.Search(ctx, domain.OrderSearchCriteria{Keyword: "jan", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)

	_, err = env.search.Search(ctx, domain.OrderSearchCriteria{Start: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func (env *memoryEnv) lastChanged(t *testing.T) *domain.OrderEvent {
	t.Helper()
	env.mu.Lock()
	defer env.mu.Unlock()
	for i := len(env.events) - 1; i >= 0; i-- {
		if env.events[i].Type == domain.OrderChangedEvent {
			return env.events[i]
		}
	}
	require.FailNow(t, "no order changed event")
	return nil
}

func TestService_UpdateToFreeShipping(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	order.Shipments[0].Price = dec("10")
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))
	assertDecimal(t, "218", order.Total, "Total")

	// a status only change must not clear the price
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{{
		ID:        order.ID,
		Shipments: []*domain.Shipment{{ID: order.Shipments[0].ID, Status: "Packed"}},
	}}))
	fetched, err := env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)
	assertDecimal(t, "10", fetched.Shipments[0].Price, "Price")

	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{{
		ID: order.ID,
		Shipments: []*domain.Shipment{
			{ID: order.Shipments[0].ID, Price: dec("0"), Supplied: domain.PriceField},
		},
	}}))

	fetched, err = env.svc.GetByID(ctx, order.ID, domain.ResponseGroupFull)
	require.NoError(t, err)
	require.Len(t, fetched.Shipments, 1)
	assert.True(t, fetched.Shipments[0].Price.IsZero())
	assert.Equal(t, "Packed", fetched.Shipments[0].Status)
	assertDecimal(t, "0", fetched.ShippingTotal, "ShippingTotal")
	assertDecimal(t, "208", fetched.Total, "Total")
}

func TestService_ChangedEventKeepsSavedState(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	order.Comment = "committed"
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))

	order.Comment = "changed later"
	order.Items[0].Sku = "Z"

	entry := env.lastChanged(t).Entries[0]
	assert.Equal(t, order.ID, entry.NewEntry.ID)
	assert.Equal(t, order.Items[0].ID, entry.NewEntry.Items[0].ID)
	assert.Equal(t, "committed", entry.NewEntry.Comment)
	assert.Equal(t, "A", entry.NewEntry.Items[0].Sku)
}

func TestService_ModifiedEntryCarriesMethods(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{order}))
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{
		{ID: order.ID, Status: domain.OrderStatusCompleted},
	}))

	entry := env.lastChanged(t).Entries[0]
	require.Equal(t, domain.EntryStateModified, entry.EntryState)
	require.Len(t, entry.NewEntry.Shipments, 1)
	require.NotNil(t, entry.NewEntry.Shipments[0].ShippingMethod)
	assert.Equal(t, "FixedRate", entry.NewEntry.Shipments[0].ShippingMethod.Code)
	require.Len(t, entry.NewEntry.InPayments, 1)
	assert.NotNil(t, entry.NewEntry.InPayments[0].PaymentMethod)
}

func TestService_GetByIDsKeysDoNotCollide(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	first, second := sampleOrder(), sampleOrder()
	first.ID, second.ID = "a", "b"
	require.NoError(t, env.svc.SaveChanges(ctx, []*domain.CustomerOrder{first, second}))

	orders, err := env.svc.GetByIDs(ctx, []string{"a-b"}, domain.ResponseGroupDefault)
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, err = env.svc.GetByIDs(ctx, []string{"a", "b"}, domain.ResponseGroupDefault)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
