package domain

import "strings"

// ResponseGroup selects which subgraphs of an order a fetch returns.
type ResponseGroup uint

const (
	WithItems ResponseGroup = 1 << iota
	WithShipments
	WithInPayments
	WithAddresses
	WithDiscounts

	ResponseGroupDefault ResponseGroup = 0
	ResponseGroupFull                  = WithItems | WithShipments | WithInPayments | WithAddresses | WithDiscounts
)

var responseGroupNames = []struct {
	name  string
	group ResponseGroup
}{
	{"WithItems", WithItems},
	{"WithShipments", WithShipments},
	{"WithInPayments", WithInPayments},
	{"WithAddresses", WithAddresses},
	{"WithDiscounts", WithDiscounts},
}

// ParseResponseGroup parses a comma separated list of flag names. An empty
// string, "Full" or a string without any known flag yields ResponseGroupFull.
func ParseResponseGroup(s string) ResponseGroup {
	var group ResponseGroup
	known := false
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "Full") {
			return ResponseGroupFull
		}
		if strings.EqualFold(part, "Default") {
			known = true
			continue
		}
		for _, n := range responseGroupNames {
			if strings.EqualFold(part, n.name) {
				group |= n.group
				known = true
			}
		}
	}
	if !known {
		return ResponseGroupFull
	}
	return group
}

func (g ResponseGroup) Has(flag ResponseGroup) bool {
	return g&flag == flag
}

func (g ResponseGroup) IsFull() bool {
	return g == ResponseGroupFull
}

func (g ResponseGroup) String() string {
	if g == ResponseGroupFull {
		return "Full"
	}
	if g == ResponseGroupDefault {
		return "Default"
	}
	parts := make([]string, 0, len(responseGroupNames))
	for _, n := range responseGroupNames {
		if g.Has(n.group) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}
