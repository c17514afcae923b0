package domain

import (
	"time"
)

type EntryState string

const (
	EntryStateAdded    EntryState = "Added"
	EntryStateModified EntryState = "Modified"
	EntryStateDeleted  EntryState = "Deleted"
)

// ChangedEntry pairs the new state of an order with its state before the
// change. OldEntry is set for modified orders only. Entries are published in
// events and never persisted.
type ChangedEntry struct {
	NewEntry   *CustomerOrder `json:"newEntry"`
	OldEntry   *CustomerOrder `json:"oldEntry,omitempty"`
	EntryState EntryState     `json:"entryState"`
}

type EventType string

const (
	// OrderChangeEvent is published before the changes are committed. A
	// failing subscriber aborts the save.
	OrderChangeEvent EventType = "OrderChangeEvent"
	// OrderChangedEvent is published after a successful commit.
	OrderChangedEvent EventType = "OrderChangedEvent"
)

type OrderEvent struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	Entries    []*ChangedEntry `json:"entries"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// OrderIDs lists the ids of the new entries in publication order.
func (e *OrderEvent) OrderIDs() []string {
	ids := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		if entry.NewEntry != nil {
			ids = append(ids, entry.NewEntry.ID)
		}
	}
	return ids
}
