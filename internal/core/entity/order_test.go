package entity_test

import (
	"testing"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromModelRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	model := &domain.CustomerOrder{
		ID:          "o1",
		Number:      "CO1",
		Status:      domain.OrderStatusNew,
		Currency:    "USD",
		CreatedDate: created,
		Items: []*domain.LineItem{
			{ID: "li1", Sku: "A", Price: decimal.MustNew(1050, 2), Quantity: 2,
				Discounts: []*domain.Discount{{Coupon: "SPRING", DiscountAmount: decimal.MustNew(1, 0)}}},
		},
		Shipments: []*domain.Shipment{
			{ID: "sh1", Number: "SH1", DeliveryAddress: &domain.Address{City: "Boston"}},
		},
		InPayments: []*domain.PaymentIn{
			{ID: "pi1", Number: "PI1", PaymentStatus: domain.PaymentStatusPaid, Sum: decimal.MustNew(21, 0)},
		},
		Addresses: []*domain.Address{{AddressType: domain.AddressTypeBilling, City: "Boston"}},
		Totals:    domain.Totals{Total: decimal.MustNew(21, 0)},
	}

	got, err := entity.FromModel(model, entity.NewPrimaryKeyMap()).ToModel()
	require.NoError(t, err)

	assert.Equal(t, model, got)
}

func TestFromModelAssignsIDs(t *testing.T) {
	model := &domain.CustomerOrder{
		Items:     []*domain.LineItem{{Sku: "A"}, {ID: "li2", Sku: "B"}},
		Shipments: []*domain.Shipment{{}},
	}
	pkMap := entity.NewPrimaryKeyMap()

	e := entity.FromModel(model, pkMap)

	require.NotEmpty(t, e.ID)
	require.NotEmpty(t, e.Items[0].ID)
	assert.Equal(t, "li2", e.Items[1].ID)
	assert.True(t, model.IsTransient(), "model ids are resolved after commit")
	assert.Empty(t, model.Items[0].ID)

	pkMap.ResolvePrimaryKeys()

	assert.Equal(t, e.ID, model.ID)
	assert.Equal(t, e.Items[0].ID, model.Items[0].ID)
	assert.Equal(t, e.Shipments[0].ID, model.Shipments[0].ID)
	assert.Equal(t, "li2", model.Items[1].ID)
}

func TestResolvePrimaryKeysNilMap(t *testing.T) {
	var pkMap *entity.PrimaryKeyMap
	model := &domain.CustomerOrder{}

	e := entity.FromModel(model, pkMap)

	assert.NotEmpty(t, e.ID)
	assert.NotPanics(t, pkMap.ResolvePrimaryKeys)
	assert.Empty(t, model.ID)
}

func TestToModelUnsavedEntity(t *testing.T) {
	_, err := (&entity.Order{}).ToModel()
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestCloneIsDeep(t *testing.T) {
	e := storedOrder()
	c := e.Clone()

	c.Items[0].Quantity = 9
	c.Addresses[0].City = "Denver"

	assert.Equal(t, 1, e.Items[0].Quantity)
	assert.Equal(t, "Boston", e.Addresses[0].City)
}
