package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port/mock"
	"github.com/MikeRez0/ordermodule/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// echoTemplate returns the template prefix up to the first placeholder.
func echoTemplate(_ context.Context, template string) (string, error) {
	prefix, _, _ := strings.Cut(template, "{")
	return prefix + "-1", nil
}

func TestNumberAssigner_EnsureNumbers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type prepareMocks func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator)

	newOrder := func() *domain.CustomerOrder {
		return &domain.CustomerOrder{
			StoreID:    "store",
			Shipments:  []*domain.Shipment{{}},
			InPayments: []*domain.PaymentIn{{}},
		}
	}

	tests := []struct {
		name     string
		order    func() *domain.CustomerOrder
		mock     prepareMocks
		expError bool
		expOrder string
		expShip  string
		expPay   string
	}{
		{
			name:  "Type prefixes with default templates",
			order: newOrder,
			mock: func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator) {
				stores.EXPECT().GetByID(gomock.Any(), "store").Return(nil, domain.ErrDataNotFound)
				gen.EXPECT().GenerateNumber(gomock.Any(), "CO{0:yyMMdd}-{1:D5}").DoAndReturn(echoTemplate)
				gen.EXPECT().GenerateNumber(gomock.Any(), "SH{0:yyMMdd}-{1:D5}").DoAndReturn(echoTemplate)
				gen.EXPECT().GenerateNumber(gomock.Any(), "PI{0:yyMMdd}-{1:D5}").DoAndReturn(echoTemplate)
			},
			expOrder: "CO-1",
			expShip:  "SH-1",
			expPay:   "PI-1",
		},
		{
			name:  "Store template overrides default",
			order: newOrder,
			mock: func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator) {
				stores.EXPECT().GetByID(gomock.Any(), "store").Return(&domain.Store{
					ID:       "store",
					Settings: map[string]string{"Order.ShipmentNewNumberTemplate": "SHIP{1:D3}"},
				}, nil)
				gen.EXPECT().GenerateNumber(gomock.Any(), "CO{0:yyMMdd}-{1:D5}").DoAndReturn(echoTemplate)
				gen.EXPECT().GenerateNumber(gomock.Any(), "SHIP{1:D3}").DoAndReturn(echoTemplate)
				gen.EXPECT().GenerateNumber(gomock.Any(), "PI{0:yyMMdd}-{1:D5}").DoAndReturn(echoTemplate)
			},
			expOrder: "CO-1",
			expShip:  "SHIP-1",
			expPay:   "PI-1",
		},
		{
			name: "Existing numbers are kept",
			order: func() *domain.CustomerOrder {
				o := newOrder()
				o.Number = "CO1"
				o.InPayments[0].Number = "PI1"
				return o
			},
			mock: func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator) {
				stores.EXPECT().GetByID(gomock.Any(), "store").Return(&domain.Store{ID: "store"}, nil)
				gen.EXPECT().GenerateNumber(gomock.Any(), "SH{0:yyMMdd}-{1:D5}").DoAndReturn(echoTemplate)
			},
			expOrder: "CO1",
			expShip:  "SH-1",
			expPay:   "PI1",
		},
		{
			name: "Fully numbered order needs no lookups",
			order: func() *domain.CustomerOrder {
				o := newOrder()
				o.Number = "CO1"
				o.Shipments[0].Number = "SH1"
				o.InPayments[0].Number = "PI1"
				return o
			},
			mock:     func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator) {},
			expOrder: "CO1",
			expShip:  "SH1",
			expPay:   "PI1",
		},
		{
			name:  "Store failure",
			order: newOrder,
			mock: func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator) {
				stores.EXPECT().GetByID(gomock.Any(), "store").Return(nil, errors.New("connection refused"))
			},
			expError: true,
		},
		{
			name:  "Generator failure",
			order: newOrder,
			mock: func(stores *mock.MockStoreService, gen *mock.MockUniqueNumberGenerator) {
				stores.EXPECT().GetByID(gomock.Any(), "store").Return(&domain.Store{ID: "store"}, nil)
				gen.EXPECT().GenerateNumber(gomock.Any(), gomock.Any()).Return("", errors.New("sequence exhausted"))
			},
			expError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stores := mock.NewMockStoreService(mockCtrl)
			gen := mock.NewMockUniqueNumberGenerator(mockCtrl)
			test.mock(stores, gen)

			a := service.NewNumberAssigner(stores, gen, zap.NewNop())
			order := test.order()
			err := a.EnsureNumbers(context.Background(), order)
			if test.expError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expOrder, order.Number)
			assert.Equal(t, test.expShip, order.Shipments[0].Number)
			assert.Equal(t, test.expPay, order.InPayments[0].Number)
		})
	}
}
