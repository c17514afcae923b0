package domain

import (
	"strings"
	"unicode"
)

const (
	OperationTypeCustomerOrder = "CustomerOrder"
	OperationTypeShipment      = "Shipment"
	OperationTypePaymentIn     = "PaymentIn"
)

// Operation is implemented by every order graph node that carries a
// globally unique document number: the order itself, its shipments and
// its incoming payments.
type Operation interface {
	OperationType() string
	OperationNumber() string
	SetOperationNumber(number string)
}

func (o *CustomerOrder) OperationType() string            { return OperationTypeCustomerOrder }
func (o *CustomerOrder) OperationNumber() string          { return o.Number }
func (o *CustomerOrder) SetOperationNumber(number string) { o.Number = number }

func (s *Shipment) OperationType() string            { return OperationTypeShipment }
func (s *Shipment) OperationNumber() string          { return s.Number }
func (s *Shipment) SetOperationNumber(number string) { s.Number = number }

func (p *PaymentIn) OperationType() string            { return OperationTypePaymentIn }
func (p *PaymentIn) OperationNumber() string          { return p.Number }
func (p *PaymentIn) SetOperationNumber(number string) { p.Number = number }

// FlattenOperations walks the order graph and returns the order followed by
// its shipments and in-payments.
func FlattenOperations(order *CustomerOrder) []Operation {
	if order == nil {
		return nil
	}
	ops := make([]Operation, 0, 1+len(order.Shipments)+len(order.InPayments))
	ops = append(ops, order)
	for _, s := range order.Shipments {
		if s != nil {
			ops = append(ops, s)
		}
	}
	for _, p := range order.InPayments {
		if p != nil {
			ops = append(ops, p)
		}
	}
	return ops
}

// OperationTypeCode forms the number prefix from the upper case letters of
// the type name (CustomerOrder => CO, PaymentIn => PI). Names with fewer than
// two capitals fall back to their first two characters (Shipment => SH).
func OperationTypeCode(typeName string) string {
	var b strings.Builder
	for _, r := range typeName {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	code := b.String()
	if len([]rune(code)) < 2 {
		runes := []rune(typeName)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		code = strings.ToUpper(string(runes))
	}
	return code
}
