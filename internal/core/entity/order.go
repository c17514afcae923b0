package entity

import (
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/govalues/decimal"
)

// Order is the persisted representation of a customer order. Child
// collections are nil when they were not loaded.
type Order struct {
	ID           string
	Number       string
	Status       string
	Currency     string
	StoreID      string
	StoreName    string
	CustomerID   string
	CustomerName string
	EmployeeID   string
	Comment      string

	SubTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	ShippingTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal

	CreatedDate  time.Time
	ModifiedDate time.Time

	Items      []*LineItem
	Shipments  []*Shipment
	InPayments []*PaymentIn
	Addresses  []*Address
	Discounts  []*Discount
}

type Discount struct {
	PromotionID    string          `json:"promotionId,omitempty"`
	Coupon         string          `json:"coupon,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

type Address struct {
	AddressType  string `json:"addressType,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Organization string `json:"organization,omitempty"`
	Line1        string `json:"line1,omitempty"`
	Line2        string `json:"line2,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
	CountryName  string `json:"countryName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

type LineItem struct {
	ID                      string          `json:"id"`
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

	remove   bool
	supplied domain.FieldMask
}

type Shipment struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	Status             string          `json:"status,omitempty"`
	Currency           string          `json:"currency,omitempty"`
	ShipmentMethodCode string          `json:"shipmentMethodCode,omitempty"`
	Price              decimal.Decimal `json:"price"`
	TaxPercentRate     decimal.Decimal `json:"taxPercentRate"`
	DeliveryAddress    *Address        `json:"deliveryAddress,omitempty"`
	Discounts          []*Discount     `json:"discounts,omitempty"`

	remove   bool
	supplied domain.FieldMask
}

type PaymentIn struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Status        string          `json:"status,omitempty"`
	PaymentStatus string          `json:"paymentStatus,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	GatewayCode   string          `json:"gatewayCode,omitempty"`
	CustomerID    string          `json:"customerId,omitempty"`
	Sum           decimal.Decimal `json:"sum"`

	remove   bool
	supplied domain.FieldMask
}

// FromModel converts an order model to its entity. Transient nodes get
// generated ids which are registered in pkMap.
func FromModel(o *domain.CustomerOrder, pkMap *PrimaryKeyMap) *Order {
	if o == nil {
		return nil
	}
	e := &Order{
		Number:        o.Number,
		Status:        string(o.Status),
		Currency:      o.Currency,
		StoreID:       o.StoreID,
		StoreName:     o.StoreName,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		EmployeeID:    o.EmployeeID,
		Comment:       o.Comment,
		SubTotal:      o.SubTotal,
		DiscountTotal: o.DiscountTotal,
		ShippingTotal: o.ShippingTotal,
		TaxTotal:      o.TaxTotal,
		Total:         o.Total,
		CreatedDate:   o.CreatedDate,
		ModifiedDate:  o.ModifiedDate,
	}
	pkMap.assign(&o.ID, &e.ID)

	if o.Items != nil {
		e.Items = make([]*LineItem, 0, len(o.Items))
		for _, li := range o.Items {
			if li == nil {
				continue
			}
			item := &LineItem{
				ProductID:               li.ProductID,
				CatalogID:               li.CatalogID,
				CategoryID:              li.CategoryID,
				Sku:                     li.Sku,
				Name:                    li.Name,
				Currency:                li.Currency,
				Price:                   li.Price,
				Quantity:                li.Quantity,
				TaxPercentRate:          li.TaxPercentRate,
				FulfillmentLocationCode: li.FulfillmentLocationCode,
				ShippingMethodCode:      li.ShippingMethodCode,
				Discounts:               discountsFromModel(li.Discounts),
				remove:                  li.Remove,
				supplied:                li.Supplied,
			}
			pkMap.assign(&li.ID, &item.ID)
			e.Items = append(e.Items, item)
		}
	}
	if o.Shipments != nil {
		e.Shipments = make([]*Shipment, 0, len(o.Shipments))
		for _, s := range o.Shipments {
			if s == nil {
				continue
			}
			shipment := &Shipment{
				Number:             s.Number,
				Status:             s.Status,
				Currency:           s.Currency,
				ShipmentMethodCode: s.ShipmentMethodCode,
				Price:              s.Price,
				TaxPercentRate:     s.TaxPercentRate,
				DeliveryAddress:    addressFromModel(s.DeliveryAddress),
				Discounts:          discountsFromModel(s.Discounts),
				remove:             s.Remove,
				supplied:           s.Supplied,
			}
			pkMap.assign(&s.ID, &shipment.ID)
			e.Shipments = append(e.Shipments, shipment)
		}
	}
	if o.InPayments != nil {
		e.InPayments = make([]*PaymentIn, 0, len(o.InPayments))
		for _, p := range o.InPayments {
			if p == nil {
				continue
			}
			payment := &PaymentIn{
				Number:        p.Number,
				Status:        p.Status,
				PaymentStatus: string(p.PaymentStatus),
				Currency:      p.Currency,
				GatewayCode:   p.GatewayCode,
				CustomerID:    p.CustomerID,
				Sum:           p.Sum,
				remove:        p.Remove,
				supplied:      p.Supplied,
			}
			pkMap.assign(&p.ID, &payment.ID)
			e.InPayments = append(e.InPayments, payment)
		}
	}
	if o.Addresses != nil {
		e.Addresses = make([]*Address, 0, len(o.Addresses))
		for _, a := range o.Addresses {
			if a != nil {
				e.Addresses = append(e.Addresses, addressFromModel(a))
			}
		}
	}
	e.Discounts = discountsFromModel(o.Discounts)

	return e
}

// ToModel converts the entity back to an order model. Collections that were
// not loaded stay nil.
func (e *Order) ToModel() (*domain.CustomerOrder, error) {
	if e == nil || e.ID == "" {
		return nil, domain.ErrDataNotFound
	}
	o := &domain.CustomerOrder{
		ID:           e.ID,
		Number:       e.Number,
		Status:       domain.OrderStatus(e.Status),
		Currency:     e.Currency,
		StoreID:      e.StoreID,
		StoreName:    e.StoreName,
		CustomerID:   e.CustomerID,
		CustomerName: e.CustomerName,
		EmployeeID:   e.EmployeeID,
		Comment:      e.Comment,
		CreatedDate:  e.CreatedDate,
		ModifiedDate: e.ModifiedDate,
		Totals: domain.Totals{
			SubTotal:      e.SubTotal,
			DiscountTotal: e.DiscountTotal,
			ShippingTotal: e.ShippingTotal,
			TaxTotal:      e.TaxTotal,
			Total:         e.Total,
		},
	}

	if e.Items != nil {
		o.Items = make([]*domain.LineItem, 0, len(e.Items))
		for _, li := range e.Items {
			o.Items = append(o.Items, &domain.LineItem{
				ID:                      li.ID,
				ProductID:               li.ProductID,
				CatalogID:               li.CatalogID,
				CategoryID:              li.CategoryID,
				Sku:                     li.Sku,
				Name:                    li.Name,
				Currency:                li.Currency,
				Price:                   li.Price,
				Quantity:                li.Quantity,
				TaxPercentRate:          li.TaxPercentRate,
				FulfillmentLocationCode: li.FulfillmentLocationCode,
				ShippingMethodCode:      li.ShippingMethodCode,
				Discounts:               discountsToModel(li.Discounts),
			})
		}
	}
	if e.Shipments != nil {
		o.Shipments = make([]*domain.Shipment, 0, len(e.Shipments))
		for _, s := range e.Shipments {
			o.Shipments = append(o.Shipments, &domain.Shipment{
				ID:                 s.ID,
				Number:             s.Number,
				Status:             s.Status,
				Currency:           s.Currency,
				ShipmentMethodCode: s.ShipmentMethodCode,
				Price:              s.Price,
				TaxPercentRate:     s.TaxPercentRate,
				DeliveryAddress:    addressToModel(s.DeliveryAddress),
				Discounts:          discountsToModel(s.Discounts),
			})
		}
	}
	if e.InPayments != nil {
		o.InPayments = make([]*domain.PaymentIn, 0, len(e.InPayments))
		for _, p := range e.InPayments {
			o.InPayments = append(o.InPayments, &domain.PaymentIn{
				ID:            p.ID,
				Number:        p.Number,
				Status:        p.Status,
				PaymentStatus: domain.PaymentStatus(p.PaymentStatus),
				Currency:      p.Currency,
				GatewayCode:   p.GatewayCode,
				CustomerID:    p.CustomerID,
				Sum:           p.Sum,
			})
		}
	}
	if e.Addresses != nil {
		o.Addresses = make([]*domain.Address, 0, len(e.Addresses))
		for _, a := range e.Addresses {
			o.Addresses = append(o.Addresses, addressToModel(a))
		}
	}
	o.Discounts = discountsToModel(e.Discounts)

	return o, nil
}

// Clone returns a deep copy of the entity.
func (e *Order) Clone() *Order {
	if e == nil {
		return nil
	}
	c := *e
	c.Items = cloneAll(e.Items, (*LineItem).clone)
	c.Shipments = cloneAll(e.Shipments, (*Shipment).clone)
	c.InPayments = cloneAll(e.InPayments, (*PaymentIn).clone)
	c.Addresses = cloneAll(e.Addresses, func(a *Address) *Address {
		n := *a
		return &n
	})
	c.Discounts = cloneAll(e.Discounts, cloneDiscount)
	return &c
}

func cloneDiscount(d *Discount) *Discount {
	n := *d
	return &n
}

func cloneAll[T any](src []*T, clone func(*T) *T) []*T {
	if src == nil {
		return nil
	}
	dst := make([]*T, len(src))
	for i, v := range src {
		dst[i] = clone(v)
	}
	return dst
}

func discountsFromModel(src []*domain.Discount) []*Discount {
	if src == nil {
		return nil
	}
	dst := make([]*Discount, 0, len(src))
	for _, d := range src {
		if d == nil {
			continue
		}
		dst = append(dst, &Discount{
			PromotionID:    d.PromotionID,
			Coupon:         d.Coupon,
			Currency:       d.Currency,
			DiscountAmount: d.DiscountAmount,
		})
	}
	return dst
}

func discountsToModel(src []*Discount) []*domain.Discount {
	if src == nil {
		return nil
	}
	dst := make([]*domain.Discount, 0, len(src))
	for _, d := range src {
		dst = append(dst, &domain.Discount{
			PromotionID:    d.PromotionID,
			Coupon:         d.Coupon,
			Currency:       d.Currency,
			DiscountAmount: d.DiscountAmount,
		})
	}
	return dst
}

func addressFromModel(a *domain.Address) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		AddressType:  string(a.AddressType),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Organization: a.Organization,
		Line1:        a.Line1,
		Line2:        a.Line2,
		City:         a.City,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
		CountryName:  a.CountryName,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func addressToModel(a *Address) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		AddressType:  domain.AddressType(a.AddressType),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Organization: a.Organization,
		Line1:        a.Line1,
		Line2:        a.Line2,
		City:         a.City,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
		CountryName:  a.CountryName,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}
