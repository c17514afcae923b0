package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "New"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusAuthorized OrderStatus = "Authorized"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusNew        PaymentStatus = "New"
	PaymentStatusPending    PaymentStatus = "Pending"
	PaymentStatusAuthorized PaymentStatus = "Authorized"
	PaymentStatusPaid       PaymentStatus = "Paid"
	PaymentStatusVoided     PaymentStatus = "Voided"
)

type AddressType string

const (
	AddressTypeBilling  AddressType = "Billing"
	AddressTypeShipping AddressType = "Shipping"
)

// Totals are derived from the order graph by a TotalsCalculator and are never
// taken from client input.
type Totals struct {
	SubTotal      decimal.Decimal `json:"subTotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	ShippingTotal decimal.Decimal `json:"shippingTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	Total         decimal.Decimal `json:"total"`
}

type Discount struct {
	PromotionID    string          `json:"promotionId,omitempty"`
	Coupon         string          `json:"coupon,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

type Address struct {
	AddressType  AddressType `json:"addressType,omitempty"`
	FirstName    string      `json:"firstName,omitempty"`
	LastName     string      `json:"lastName,omitempty"`
	Organization string      `json:"organization,omitempty"`
	Line1        string      `json:"line1,omitempty"`
	Line2        string      `json:"line2,omitempty"`
	City         string      `json:"city,omitempty"`
	PostalCode   string      `json:"postalCode,omitempty"`
	CountryCode  string      `json:"countryCode,omitempty"`
	CountryName  string      `json:"countryName,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Email        string      `json:"email,omitempty"`
}

type LineItem struct {
	ID                      string          `json:"id,omitempty"`
	ProductID               string          `json:"productId,omitempty"`
	CatalogID               string          `json:"catalogId,omitempty"`
	CategoryID              string          `json:"categoryId,omitempty"`
	Sku                     string          `json:"sku,omitempty"`
	Name                    string          `json:"name,omitempty"`
	Currency                string          `json:"currency,omitempty"`
	Price                   decimal.Decimal `json:"price"`
	Quantity                int             `json:"quantity"`
	TaxPercentRate          decimal.Decimal `json:"taxPercentRate"`
	FulfillmentLocationCode string          `json:"fulfillmentLocationCode,omitempty"`
	ShippingMethodCode      string          `json:"shippingMethodCode,omitempty"`
	Discounts               []*Discount     `json:"discounts,omitempty"`
	// Remove asks a save to drop the item from the stored order.
	Remove   bool      `json:"remove,omitempty"`
	Supplied FieldMask `json:"-"`
}

type Shipment struct {
	ID                 string          `json:"id,omitempty"`
	Number             string          `json:"number,omitempty"`
	Status             string          `json:"status,omitempty"`
	Currency           string          `json:"currency,omitempty"`
	ShipmentMethodCode string          `json:"shipmentMethodCode,omitempty"`
	Price              decimal.Decimal `json:"price"`
	TaxPercentRate     decimal.Decimal `json:"taxPercentRate"`
	DeliveryAddress    *Address        `json:"deliveryAddress,omitempty"`
	Discounts          []*Discount     `json:"discounts,omitempty"`
	ShippingMethod     *ShippingMethod `json:"shippingMethod,omitempty"`
	Remove             bool            `json:"remove,omitempty"`
	Supplied           FieldMask       `json:"-"`
}

type PaymentIn struct {
	ID            string          `json:"id,omitempty"`
	Number        string          `json:"number,omitempty"`
	Status        string          `json:"status,omitempty"`
	PaymentStatus PaymentStatus   `json:"paymentStatus,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	GatewayCode   string          `json:"gatewayCode,omitempty"`
	CustomerID    string          `json:"customerId,omitempty"`
	Sum           decimal.Decimal `json:"sum"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	Remove        bool            `json:"remove,omitempty"`
	Supplied      FieldMask       `json:"-"`
}

type CustomerOrder struct {
	ID           string      `json:"id,omitempty"`
	Number       string      `json:"number,omitempty"`
	Status       OrderStatus `json:"status,omitempty"`
	Currency     string      `json:"currency,omitempty"`
	StoreID      string      `json:"storeId,omitempty"`
	StoreName    string      `json:"storeName,omitempty"`
	CustomerID   string      `json:"customerId,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
	EmployeeID   string      `json:"employeeId,omitempty"`
	Comment      string      `json:"comment,omitempty"`
	CreatedDate  time.Time   `json:"createdDate"`
	ModifiedDate time.Time   `json:"modifiedDate"`

	Items      []*LineItem  `json:"items,omitempty"`
	Shipments  []*Shipment  `json:"shipments,omitempty"`
	InPayments []*PaymentIn `json:"inPayments,omitempty"`
	Addresses  []*Address   `json:"addresses,omitempty"`
	Discounts  []*Discount  `json:"discounts,omitempty"`

	Totals
}

// IsTransient reports whether the order has never been persisted.
func (o *CustomerOrder) IsTransient() bool {
	return o.ID == ""
}

// Clone returns a deep copy. Decimal values are immutable and are shared.
func (o *CustomerOrder) Clone() *CustomerOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = cloneSlice(o.Items, (*LineItem).clone)
	c.Shipments = cloneSlice(o.Shipments, (*Shipment).clone)
	c.InPayments = cloneSlice(o.InPayments, (*PaymentIn).clone)
	c.Addresses = cloneSlice(o.Addresses, (*Address).clone)
	c.Discounts = cloneSlice(o.Discounts, (*Discount).clone)
	return &c
}

// DropRemoved discards the children flagged for removal. A new order has no
// stored counterpart to remove them from.
func (o *CustomerOrder) DropRemoved() {
	o.Items = dropRemoved(o.Items, func(li *LineItem) bool { return li.Remove })
	o.Shipments = dropRemoved(o.Shipments, func(s *Shipment) bool { return s.Remove })
	o.InPayments = dropRemoved(o.InPayments, func(p *PaymentIn) bool { return p.Remove })
}

// ReduceDetails strips the subgraphs not selected by the response group.
func (o *CustomerOrder) ReduceDetails(group ResponseGroup) {
	if !group.Has(WithItems) {
		o.Items = nil
	}
	if !group.Has(WithShipments) {
		o.Shipments = nil
	}
	if !group.Has(WithInPayments) {
		o.InPayments = nil
	}
	if !group.Has(WithAddresses) {
		o.Addresses = nil
	}
	if !group.Has(WithDiscounts) {
		o.Discounts = nil
	}
}

func (d *Discount) clone() *Discount {
	c := *d
	return &c
}

func (a *Address) clone() *Address {
	c := *a
	return &c
}

func (li *LineItem) clone() *LineItem {
	c := *li
	c.Discounts = cloneSlice(li.Discounts, (*Discount).clone)
	return &c
}

func (s *Shipment) clone() *Shipment {
	c := *s
	if s.DeliveryAddress != nil {
		c.DeliveryAddress = s.DeliveryAddress.clone()
	}
	if s.ShippingMethod != nil {
		m := *s.ShippingMethod
		c.ShippingMethod = &m
	}
	c.Discounts = cloneSlice(s.Discounts, (*Discount).clone)
	return &c
}

func (p *PaymentIn) clone() *PaymentIn {
	c := *p
	if p.PaymentMethod != nil {
		m := *p.PaymentMethod
		c.PaymentMethod = &m
	}
	return &c
}

func dropRemoved[T any](src []*T, removed func(*T) bool) []*T {
	if src == nil {
		return nil
	}
	kept := make([]*T, 0, len(src))
	for _, v := range src {
		if v != nil && !removed(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

func cloneSlice[T any](src []*T, clone func(*T) *T) []*T {
	if src == nil {
		return nil
	}
	dst := make([]*T, 0, len(src))
	for _, v := range src {
		if v == nil {
			continue
		}
		dst = append(dst, clone(v))
	}
	return dst
}
