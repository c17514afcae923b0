package service

import (
	"fmt"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/govalues/decimal"
)

const taxScale = 2

// TotalsCalculator is the default order totals formula. Line and shipment
// discounts reduce their extended amounts, order level discounts reduce the
// grand total only.
type TotalsCalculator struct{}

func NewTotalsCalculator() *TotalsCalculator {
	return &TotalsCalculator{}
}

func (c *TotalsCalculator) CalculateTotals(order *domain.CustomerOrder) error {
	if order == nil {
		return domain.ErrValidation
	}
	acc := accumulator{}

	subTotal := decimal.Zero
	shippingTotal := decimal.Zero
	discountTotal := decimal.Zero
	taxTotal := decimal.Zero

	for _, item := range order.Items {
		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return fmt.Errorf("line item %s quantity: %w", item.ID, err)
		}
		itemDiscount := acc.sumDiscounts(item.Discounts)
		extended := acc.sub(acc.mul(item.Price, qty), itemDiscount)
		subTotal = acc.add(subTotal, extended)
		discountTotal = acc.add(discountTotal, itemDiscount)
		taxTotal = acc.add(taxTotal, acc.mul(extended, item.TaxPercentRate).Round(taxScale))
	}

	for _, shipment := range order.Shipments {
		shipmentDiscount := acc.sumDiscounts(shipment.Discounts)
		extended := acc.sub(shipment.Price, shipmentDiscount)
		shippingTotal = acc.add(shippingTotal, extended)
		discountTotal = acc.add(discountTotal, shipmentDiscount)
		taxTotal = acc.add(taxTotal, acc.mul(extended, shipment.TaxPercentRate).Round(taxScale))
	}

	orderDiscount := acc.sumDiscounts(order.Discounts)
	discountTotal = acc.add(discountTotal, orderDiscount)

	total := acc.sub(acc.add(acc.add(subTotal, shippingTotal), taxTotal), orderDiscount)

	if acc.err != nil {
		return fmt.Errorf("calculate totals for order %s: %w", order.ID, acc.err)
	}

	order.Totals = domain.Totals{
		SubTotal:      subTotal,
		DiscountTotal: discountTotal,
		ShippingTotal: shippingTotal,
		TaxTotal:      taxTotal,
		Total:         total,
	}
	return nil
}

// accumulator keeps the first arithmetic error so the formula reads
// without an error check after every operation.
type accumulator struct {
	err error
}

func (a *accumulator) add(x, y decimal.Decimal) decimal.Decimal {
	if a.err != nil {
		return decimal.Zero
	}
	r, err := x.Add(y)
	if err != nil {
		a.err = err
	}
	return r
}

func (a *accumulator) sub(x, y decimal.Decimal) decimal.Decimal {
	if a.err != nil {
		return decimal.Zero
	}
	r, err := x.Sub(y)
	if err != nil {
		a.err = err
	}
	return r
}

func (a *accumulator) mul(x, y decimal.Decimal) decimal.Decimal {
	if a.err != nil {
		return decimal.Zero
	}
	r, err := x.Mul(y)
	if err != nil {
		a.err = err
	}
	return r
}

func (a *accumulator) sumDiscounts(discounts []*domain.Discount) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range discounts {
		sum = a.add(sum, d.DiscountAmount)
	}
	return sum
}
