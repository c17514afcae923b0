package service_test

import (
	"testing"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/MikeRez0/ordermodule/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T) *entity.Order {
	t.Helper()
	o := &domain.CustomerOrder{
		ID:       "o1",
		Number:   "CO1",
		Status:   domain.OrderStatusPending,
		Currency: "USD",
		Items: []*domain.LineItem{
			{ID: "i1", Sku: "A", Price: dec("10"), Quantity: 2, Discounts: []*domain.Discount{{DiscountAmount: dec("12")}}},
			{ID: "i2", Sku: "B", Price: dec("100"), Quantity: 2},
		},
		Shipments: []*domain.Shipment{{ID: "s1", Number: "SH1", Price: dec("0")}},
	}
	require.NoError(t, service.NewTotalsCalculator().CalculateTotals(o))
	return entity.FromModel(o, nil)
}

func TestChangeReconciler_NewOrder(t *testing.T) {
	r := service.NewChangeReconciler(service.NewTotalsCalculator())
	pkMap := entity.NewPrimaryKeyMap()

	order := &domain.CustomerOrder{
		Number: "CO2",
		Items:  []*domain.LineItem{{Price: dec("3"), Quantity: 3}},
	}
	entry, added, err := r.Reconcile(order, nil, pkMap)
	require.NoError(t, err)
	require.NotNil(t, added)

	assert.Equal(t, domain.EntryStateAdded, entry.EntryState)
	assert.Same(t, order, entry.NewEntry)
	assert.Nil(t, entry.OldEntry)
	assert.False(t, order.CreatedDate.IsZero())
	assertDecimal(t, "9", order.SubTotal, "SubTotal")
	assertDecimal(t, "9", added.Total, "entity Total")

	assert.Empty(t, order.ID)
	pkMap.ResolvePrimaryKeys()
	assert.Equal(t, added.ID, order.ID)
	assert.Equal(t, added.Items[0].ID, order.Items[0].ID)
}

func TestChangeReconciler_StatusOnlyUpdateKeepsTotals(t *testing.T) {
	r := service.NewChangeReconciler(service.NewTotalsCalculator())
	stored := storedOrder(t)
	before := stored.Total

	order := &domain.CustomerOrder{ID: "o1", Status: domain.OrderStatusAuthorized}
	entry, added, err := r.Reconcile(order, stored, entity.NewPrimaryKeyMap())
	require.NoError(t, err)
	assert.Nil(t, added)

	assert.Equal(t, domain.EntryStateModified, entry.EntryState)
	assert.Equal(t, domain.OrderStatusPending, entry.OldEntry.Status)
	assert.Equal(t, domain.OrderStatusAuthorized, entry.NewEntry.Status)

	assert.Equal(t, "Authorized", stored.Status)
	assert.Equal(t, "CO1", stored.Number)
	assert.Len(t, stored.Items, 2)
	assertDecimal(t, "208", before, "stored Total before")
	assertDecimal(t, before.String(), stored.Total, "stored Total")
	assertDecimal(t, "208", order.Total, "input Total")
}

func TestChangeReconciler_PartialAddItemRecomputesTotals(t *testing.T) {
	r := service.NewChangeReconciler(service.NewTotalsCalculator())
	stored := storedOrder(t)
	pkMap := entity.NewPrimaryKeyMap()

	order := &domain.CustomerOrder{
		ID:    "o1",
		Items: []*domain.LineItem{{Sku: "C", Price: dec("5"), Quantity: 1}},
	}
	entry, _, err := r.Reconcile(order, stored, pkMap)
	require.NoError(t, err)

	require.Len(t, stored.Items, 3)
	assertDecimal(t, "213", stored.SubTotal, "stored SubTotal")
	assertDecimal(t, "213", entry.NewEntry.SubTotal, "merged SubTotal")
	assertDecimal(t, "208", entry.OldEntry.SubTotal, "old SubTotal")

	pkMap.ResolvePrimaryKeys()
	assert.Equal(t, stored.Items[2].ID, order.Items[0].ID)
}

func TestChangeReconciler_RemoveItem(t *testing.T) {
	r := service.NewChangeReconciler(service.NewTotalsCalculator())
	stored := storedOrder(t)

	order := &domain.CustomerOrder{
		ID:    "o1",
		Items: []*domain.LineItem{{ID: "i1", Remove: true}},
	}
	_, _, err := r.Reconcile(order, stored, entity.NewPrimaryKeyMap())
	require.NoError(t, err)

	require.Len(t, stored.Items, 1)
	assert.Equal(t, "i2", stored.Items[0].ID)
	assertDecimal(t, "200", stored.Total, "stored Total")
}

func TestChangeReconciler_NewOrderSkipsRemovedChildren(t *testing.T) {
	r := service.NewChangeReconciler(service.NewTotalsCalculator())

	order := &domain.CustomerOrder{
		Items: []*domain.LineItem{
			{Sku: "A", Price: dec("3"), Quantity: 1},
			{Sku: "B", Price: dec("50"), Quantity: 1, Remove: true},
		},
		Shipments:  []*domain.Shipment{{Price: dec("8"), Remove: true}},
		InPayments: []*domain.PaymentIn{{Sum: dec("3")}, {Sum: dec("50"), Remove: true}},
	}
	entry, added, err := r.Reconcile(order, nil, entity.NewPrimaryKeyMap())
	require.NoError(t, err)

	require.Len(t, added.Items, 1)
	assert.Equal(t, "A", added.Items[0].Sku)
	assert.Empty(t, added.Shipments)
	require.Len(t, added.InPayments, 1)
	assertDecimal(t, "3", added.InPayments[0].Sum, "kept payment Sum")
	assertDecimal(t, "3", added.Total, "entity Total")
	assertDecimal(t, "0", added.ShippingTotal, "entity ShippingTotal")
	assert.Len(t, entry.NewEntry.Items, 1)
}

func TestChangeReconciler_InheritNumbers(t *testing.T) {
	r := service.NewChangeReconciler(service.NewTotalsCalculator())
	stored := storedOrder(t)

	order := &domain.CustomerOrder{
		ID:        "o1",
		Shipments: []*domain.Shipment{{ID: "s1"}, {}},
	}
	r.InheritNumbers(order, stored)

	assert.Equal(t, "CO1", order.Number)
	assert.Equal(t, "SH1", order.Shipments[0].Number)
	assert.Empty(t, order.Shipments[1].Number)

	r.InheritNumbers(order, nil)
	assert.Equal(t, "CO1", order.Number)
}
