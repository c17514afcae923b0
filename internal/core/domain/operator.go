package domain

// Operator is the authenticated back office user working with orders.
type Operator struct {
	ID string
}
