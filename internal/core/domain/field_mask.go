package domain

import (
	"encoding/json"
	"strings"
)

// FieldMask marks the amount fields a partial update carries explicitly.
// Zero is a valid amount, so a zero value counts as an update only when its
// field is marked. JSON decoding marks every amount key present in the
// document. Callers building updates in code set the mask themselves.
type FieldMask uint8

const (
	PriceField FieldMask = 1 << iota
	QuantityField
	TaxRateField
	SumField
)

func (m FieldMask) Has(f FieldMask) bool {
	return m&f != 0
}

var (
	lineItemAmounts = map[string]FieldMask{
		"price":          PriceField,
		"quantity":       QuantityField,
		"taxPercentRate": TaxRateField,
	}
	shipmentAmounts = map[string]FieldMask{
		"price":          PriceField,
		"taxPercentRate": TaxRateField,
	}
	paymentAmounts = map[string]FieldMask{
		"sum": SumField,
	}
)

func (li *LineItem) UnmarshalJSON(data []byte) error {
	type plain LineItem
	if err := json.Unmarshal(data, (*plain)(li)); err != nil {
		return err
	}
	mask, err := suppliedFields(data, lineItemAmounts)
	li.Supplied = mask
	return err
}

func (s *Shipment) UnmarshalJSON(data []byte) error {
	type plain Shipment
	if err := json.Unmarshal(data, (*plain)(s)); err != nil {
		return err
	}
	mask, err := suppliedFields(data, shipmentAmounts)
	s.Supplied = mask
	return err
}

func (p *PaymentIn) UnmarshalJSON(data []byte) error {
	type plain PaymentIn
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	mask, err := suppliedFields(data, paymentAmounts)
	p.Supplied = mask
	return err
}

// suppliedFields matches keys case-insensitively, like encoding/json does.
// An explicit null is treated as absent.
func suppliedFields(data []byte, fields map[string]FieldMask) (FieldMask, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, err
	}
	var mask FieldMask
	for key, value := range raw {
		if string(value) == "null" {
			continue
		}
		for name, f := range fields {
			if strings.EqualFold(key, name) {
				mask |= f
			}
		}
	}
	return mask, nil
}
