package catalog

import (
	"context"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
)

// StaticShippingMethods serves a fixed shipping catalog. Methods without a
// store belong to every store.
type StaticShippingMethods []*domain.ShippingMethod

func (s StaticShippingMethods) SearchByStore(_ context.Context, storeID string) ([]*domain.ShippingMethod, error) {
	result := make([]*domain.ShippingMethod, 0, len(s))
	for _, m := range s {
		if m.StoreID == "" || m.StoreID == storeID {
			result = append(result, m)
		}
	}
	return result, nil
}

// StaticPaymentMethods serves a fixed payment catalog.
type StaticPaymentMethods []*domain.PaymentMethod

func (s StaticPaymentMethods) SearchByStore(_ context.Context, storeID string) ([]*domain.PaymentMethod, error) {
	result := make([]*domain.PaymentMethod, 0, len(s))
	for _, m := range s {
		if m.StoreID == "" || m.StoreID == storeID {
			result = append(result, m)
		}
	}
	return result, nil
}

// DefaultShippingMethods and DefaultPaymentMethods are used when no catalog
// service is configured.
var (
	DefaultShippingMethods = StaticShippingMethods{
		{Code: "FixedRate", Name: "Fixed rate", IsActive: true},
		{Code: "Pickup", Name: "Pickup in store", IsActive: true},
	}
	DefaultPaymentMethods = StaticPaymentMethods{
		{Code: "DefaultManualPaymentMethod", Name: "Manual payment", IsActive: true},
		{Code: "CreditCard", Name: "Credit card", IsActive: true},
	}
)
