package entity_test

import (
	"testing"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder() *entity.Order {
	return &entity.Order{
		ID:       "o1",
		Number:   "CO000001",
		Status:   "New",
		Currency: "USD",
		Comment:  "call before delivery",
		Items: []*entity.LineItem{
			{ID: "li1", Sku: "A", Price: decimal.MustNew(100, 0), Quantity: 1},
			{ID: "li2", Sku: "B", Price: decimal.MustNew(50, 0), Quantity: 2},
		},
		Shipments: []*entity.Shipment{
			{ID: "sh1", Number: "SH000001", Status: "New", Price: decimal.MustNew(10, 0)},
		},
		Addresses: []*entity.Address{
			{AddressType: "Billing", City: "Boston"},
		},
	}
}

func TestPatch(t *testing.T) {
	tests := []struct {
		name  string
		model *domain.CustomerOrder
		check func(t *testing.T, target *entity.Order)
	}{
		{
			name:  "Status only keeps children",
			model: &domain.CustomerOrder{ID: "o1", Status: domain.OrderStatusCompleted},
			check: func(t *testing.T, target *entity.Order) {
				assert.Equal(t, "Completed", target.Status)
				assert.Equal(t, "call before delivery", target.Comment)
				assert.Len(t, target.Items, 2)
				assert.Len(t, target.Shipments, 1)
				assert.Len(t, target.Addresses, 1)
			},
		},
		{
			name:  "Assigned number is never replaced",
			model: &domain.CustomerOrder{ID: "o1", Number: "CO999999"},
			check: func(t *testing.T, target *entity.Order) {
				assert.Equal(t, "CO000001", target.Number)
			},
		},
		{
			name: "Items merged by id",
			model: &domain.CustomerOrder{ID: "o1", Items: []*domain.LineItem{
				{ID: "li2", Quantity: 3},
				{ID: "li3", Sku: "C", Price: decimal.MustNew(5, 0), Quantity: 1},
			}},
			check: func(t *testing.T, target *entity.Order) {
				require.Len(t, target.Items, 3)
				assert.Equal(t, 1, target.Items[0].Quantity)
				assert.Equal(t, 3, target.Items[1].Quantity)
				assert.Equal(t, "B", target.Items[1].Sku)
				assert.Equal(t, "li3", target.Items[2].ID)
			},
		},
		{
			name: "Removed items dropped",
			model: &domain.CustomerOrder{ID: "o1", Items: []*domain.LineItem{
				{ID: "li1", Remove: true},
			}},
			check: func(t *testing.T, target *entity.Order) {
				require.Len(t, target.Items, 1)
				assert.Equal(t, "li2", target.Items[0].ID)
			},
		},
		{
			name: "Shipment number kept and status patched",
			model: &domain.CustomerOrder{ID: "o1", Shipments: []*domain.Shipment{
				{ID: "sh1", Number: "SH777", Status: "Sent"},
			}},
			check: func(t *testing.T, target *entity.Order) {
				require.Len(t, target.Shipments, 1)
				assert.Equal(t, "SH000001", target.Shipments[0].Number)
				assert.Equal(t, "Sent", target.Shipments[0].Status)
			},
		},
		{
			name: "Unsupplied zero amounts keep stored values",
			model: &domain.CustomerOrder{ID: "o1",
				Items:     []*domain.LineItem{{ID: "li2", Name: "Router"}},
				Shipments: []*domain.Shipment{{ID: "sh1", Status: "Packed"}},
			},
			check: func(t *testing.T, target *entity.Order) {
				assert.Equal(t, 2, target.Items[1].Quantity)
				assert.Zero(t, decimal.MustNew(50, 0).Cmp(target.Items[1].Price))
				assert.Zero(t, decimal.MustNew(10, 0).Cmp(target.Shipments[0].Price))
			},
		},
		{
			name: "Supplied zero amounts replace stored values",
			model: &domain.CustomerOrder{ID: "o1",
				Items: []*domain.LineItem{
					{ID: "li1", Supplied: domain.PriceField},
					{ID: "li2", Supplied: domain.QuantityField},
				},
				Shipments: []*domain.Shipment{{ID: "sh1", Supplied: domain.PriceField}},
			},
			check: func(t *testing.T, target *entity.Order) {
				require.Len(t, target.Items, 2)
				assert.True(t, target.Items[0].Price.IsZero())
				assert.Equal(t, 1, target.Items[0].Quantity)
				assert.Equal(t, 0, target.Items[1].Quantity)
				assert.Zero(t, decimal.MustNew(50, 0).Cmp(target.Items[1].Price))
				assert.True(t, target.Shipments[0].Price.IsZero())
				assert.Equal(t, "SH000001", target.Shipments[0].Number)
			},
		},
		{
			name: "Addresses replaced as a whole",
			model: &domain.CustomerOrder{ID: "o1", Addresses: []*domain.Address{
				{AddressType: domain.AddressTypeShipping, City: "Denver"},
			}},
			check: func(t *testing.T, target *entity.Order) {
				require.Len(t, target.Addresses, 1)
				assert.Equal(t, "Denver", target.Addresses[0].City)
				assert.Equal(t, "Shipping", target.Addresses[0].AddressType)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target := storedOrder()
			entity.FromModel(test.model, entity.NewPrimaryKeyMap()).Patch(target)
			test.check(t, target)
		})
	}
}

func TestPatchLeavesSourceUnshared(t *testing.T) {
	target := storedOrder()
	src := entity.FromModel(&domain.CustomerOrder{ID: "o1", Items: []*domain.LineItem{
		{ID: "li9", Sku: "Z", Quantity: 1},
	}}, nil)

	src.Patch(target)
	src.Items[0].Quantity = 42

	assert.Equal(t, 1, target.Items[2].Quantity)
}

func TestPatchNil(t *testing.T) {
	var e *entity.Order
	target := storedOrder()

	assert.NotPanics(t, func() { e.Patch(target) })
	assert.NotPanics(t, func() { storedOrder().Patch(nil) })
	assert.Equal(t, storedOrder(), target)
}
