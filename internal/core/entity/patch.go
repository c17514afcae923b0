package entity

import (
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/govalues/decimal"
)

// Patch applies the entity onto target, which holds the fully loaded stored
// state. Empty scalars leave the stored value untouched unless the child marks
// the amount as supplied, and nil collections
// leave the stored collection untouched. Child collections are merged by id:
// known children are patched, unknown ones appended and children marked for
// removal dropped. Totals are always copied. An assigned Number is never
// replaced.
func (e *Order) Patch(target *Order) {
	if e == nil || target == nil {
		return
	}
	patchString(&target.Number, e.Number, true)
	patchString(&target.Status, e.Status, false)
	patchString(&target.Currency, e.Currency, false)
	patchString(&target.StoreID, e.StoreID, false)
	patchString(&target.StoreName, e.StoreName, false)
	patchString(&target.CustomerID, e.CustomerID, false)
	patchString(&target.CustomerName, e.CustomerName, false)
	patchString(&target.EmployeeID, e.EmployeeID, false)
	patchString(&target.Comment, e.Comment, false)

	target.SubTotal = e.SubTotal
	target.DiscountTotal = e.DiscountTotal
	target.ShippingTotal = e.ShippingTotal
	target.TaxTotal = e.TaxTotal
	target.Total = e.Total

	if !e.ModifiedDate.IsZero() {
		target.ModifiedDate = e.ModifiedDate
	}

	if e.Items != nil {
		target.Items = patchCollection(e.Items, target.Items,
			func(li *LineItem) string { return li.ID },
			func(li *LineItem) bool { return li.remove },
			(*LineItem).patch, (*LineItem).clone)
	}
	if e.Shipments != nil {
		target.Shipments = patchCollection(e.Shipments, target.Shipments,
			func(s *Shipment) string { return s.ID },
			func(s *Shipment) bool { return s.remove },
			(*Shipment).patch, (*Shipment).clone)
	}
	if e.InPayments != nil {
		target.InPayments = patchCollection(e.InPayments, target.InPayments,
			func(p *PaymentIn) string { return p.ID },
			func(p *PaymentIn) bool { return p.remove },
			(*PaymentIn).patch, (*PaymentIn).clone)
	}
	// Addresses and discounts are value objects and are replaced as a whole.
	if e.Addresses != nil {
		target.Addresses = cloneAll(e.Addresses, func(a *Address) *Address {
			n := *a
			return &n
		})
	}
	if e.Discounts != nil {
		target.Discounts = cloneAll(e.Discounts, cloneDiscount)
	}
}

func (li *LineItem) patch(target *LineItem) {
	patchString(&target.ProductID, li.ProductID, false)
	patchString(&target.CatalogID, li.CatalogID, false)
	patchString(&target.CategoryID, li.CategoryID, false)
	patchString(&target.Sku, li.Sku, false)
	patchString(&target.Name, li.Name, false)
	patchString(&target.Currency, li.Currency, false)
	patchDecimal(&target.Price, li.Price, li.supplied.Has(domain.PriceField))
	if li.Quantity != 0 || li.supplied.Has(domain.QuantityField) {
		target.Quantity = li.Quantity
	}
	patchDecimal(&target.TaxPercentRate, li.TaxPercentRate, li.supplied.Has(domain.TaxRateField))
	patchString(&target.FulfillmentLocationCode, li.FulfillmentLocationCode, false)
	patchString(&target.ShippingMethodCode, li.ShippingMethodCode, false)
	if li.Discounts != nil {
		target.Discounts = cloneAll(li.Discounts, cloneDiscount)
	}
}

func (s *Shipment) patch(target *Shipment) {
	patchString(&target.Number, s.Number, true)
	patchString(&target.Status, s.Status, false)
	patchString(&target.Currency, s.Currency, false)
	patchString(&target.ShipmentMethodCode, s.ShipmentMethodCode, false)
	patchDecimal(&target.Price, s.Price, s.supplied.Has(domain.PriceField))
	patchDecimal(&target.TaxPercentRate, s.TaxPercentRate, s.supplied.Has(domain.TaxRateField))
	if s.DeliveryAddress != nil {
		a := *s.DeliveryAddress
		target.DeliveryAddress = &a
	}
	if s.Discounts != nil {
		target.Discounts = cloneAll(s.Discounts, cloneDiscount)
	}
}

func (p *PaymentIn) patch(target *PaymentIn) {
	patchString(&target.Number, p.Number, true)
	patchString(&target.Status, p.Status, false)
	patchString(&target.PaymentStatus, p.PaymentStatus, false)
	patchString(&target.Currency, p.Currency, false)
	patchString(&target.GatewayCode, p.GatewayCode, false)
	patchString(&target.CustomerID, p.CustomerID, false)
	patchDecimal(&target.Sum, p.Sum, p.supplied.Has(domain.SumField))
}

func patchString(dst *string, src string, immutable bool) {
	if src == "" {
		return
	}
	if immutable && *dst != "" {
		return
	}
	*dst = src
}

func patchDecimal(dst *decimal.Decimal, src decimal.Decimal, supplied bool) {
	if src.IsZero() && !supplied {
		return
	}
	*dst = src
}

func patchCollection[T any](src, dst []*T, id func(*T) string, removed func(*T) bool,
	patch func(src, dst *T), clone func(*T) *T) []*T {
	index := make(map[string]int, len(dst))
	for i, d := range dst {
		index[id(d)] = i
	}
	drop := make(map[string]struct{})
	for _, s := range src {
		i, ok := index[id(s)]
		switch {
		case removed(s):
			drop[id(s)] = struct{}{}
		case ok:
			patch(s, dst[i])
		default:
			dst = append(dst, clone(s))
			index[id(s)] = len(dst) - 1
		}
	}
	if len(drop) == 0 {
		return dst
	}
	kept := dst[:0]
	for _, d := range dst {
		if _, ok := drop[id(d)]; !ok {
			kept = append(kept, d)
		}
	}
	return kept
}

func (li *LineItem) clone() *LineItem {
	n := *li
	n.Discounts = cloneAll(li.Discounts, cloneDiscount)
	return &n
}

func (s *Shipment) clone() *Shipment {
	n := *s
	if s.DeliveryAddress != nil {
		a := *s.DeliveryAddress
		n.DeliveryAddress = &a
	}
	n.Discounts = cloneAll(s.Discounts, cloneDiscount)
	return &n
}

func (p *PaymentIn) clone() *PaymentIn {
	n := *p
	return &n
}
