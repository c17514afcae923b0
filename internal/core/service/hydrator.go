package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"golang.org/x/sync/errgroup"
)

// DependencyHydrator resolves the shipping and payment methods referenced by
// an order against the catalogs of its store.
type DependencyHydrator struct {
	shipping port.ShippingMethodsSearchService
	payment  port.PaymentMethodsSearchService
}

func NewDependencyHydrator(shipping port.ShippingMethodsSearchService,
	payment port.PaymentMethodsSearchService) *DependencyHydrator {
	return &DependencyHydrator{
		shipping: shipping,
		payment:  payment,
	}
}

// LoadDependencies queries both catalogs concurrently. Codes without a
// matching method are left unresolved.
func (h *DependencyHydrator) LoadDependencies(ctx context.Context, order *domain.CustomerOrder) error {
	if order == nil {
		return domain.ErrValidation
	}

	var (
		shippingMethods []*domain.ShippingMethod
		paymentMethods  []*domain.PaymentMethod
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		methods, err := h.shipping.SearchByStore(gctx, order.StoreID)
		if err != nil {
			return fmt.Errorf("search shipping methods: %w", err)
		}
		shippingMethods = methods
		return nil
	})
	g.Go(func() error {
		methods, err := h.payment.SearchByStore(gctx, order.StoreID)
		if err != nil {
			return fmt.Errorf("search payment methods: %w", err)
		}
		paymentMethods = methods
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(shippingMethods) > 0 {
		for _, shipment := range order.Shipments {
			shipment.ShippingMethod = findShippingMethod(shippingMethods, shipment.ShipmentMethodCode)
		}
	}
	if len(paymentMethods) > 0 {
		for _, payment := range order.InPayments {
			payment.PaymentMethod = findPaymentMethod(paymentMethods, payment.GatewayCode)
		}
	}
	return nil
}

func findShippingMethod(methods []*domain.ShippingMethod, code string) *domain.ShippingMethod {
	for _, m := range methods {
		if strings.EqualFold(m.Code, code) {
			return m
		}
	}
	return nil
}

func findPaymentMethod(methods []*domain.PaymentMethod, code string) *domain.PaymentMethod {
	for _, m := range methods {
		if strings.EqualFold(m.Code, code) {
			return m
		}
	}
	return nil
}
