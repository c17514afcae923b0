package service

import (
	"fmt"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/MikeRez0/ordermodule/internal/core/port"
)

// ChangeReconciler produces the state to persist for an incoming, possibly
// partial, order.
type ChangeReconciler struct {
	totals port.TotalsCalculator
	now    func() time.Time
}

func NewChangeReconciler(totals port.TotalsCalculator) *ChangeReconciler {
	return &ChangeReconciler{
		totals: totals,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile merges order into stored. When stored is nil the order is new
// and the returned entity must be added to the unit of work. Otherwise stored
// is updated in place and the returned entity is nil.
//
// Totals need the complete item, shipment and discount graph, which a partial
// input does not carry. The input is therefore patched onto the stored
// entity first, totals are computed on the merged result and the merged
// model with its totals is patched back onto the stored entity.
func (r *ChangeReconciler) Reconcile(order *domain.CustomerOrder, stored *entity.Order,
	pkMap *entity.PrimaryKeyMap) (*domain.ChangedEntry, *entity.Order, error) {
	now := r.now()

	if stored == nil {
		if order.CreatedDate.IsZero() {
			order.CreatedDate = now
		}
		order.ModifiedDate = now
		order.DropRemoved()
		if err := r.totals.CalculateTotals(order); err != nil {
			return nil, nil, err
		}
		added := entity.FromModel(order, pkMap)
		return &domain.ChangedEntry{NewEntry: order, EntryState: domain.EntryStateAdded}, added, nil
	}

	original, err := stored.ToModel()
	if err != nil {
		return nil, nil, fmt.Errorf("convert stored order %s: %w", stored.ID, err)
	}

	order.ModifiedDate = now
	entity.FromModel(order, pkMap).Patch(stored)

	merged, err := stored.ToModel()
	if err != nil {
		return nil, nil, fmt.Errorf("convert merged order %s: %w", stored.ID, err)
	}
	if err := r.totals.CalculateTotals(merged); err != nil {
		return nil, nil, err
	}
	entity.FromModel(merged, pkMap).Patch(stored)
	order.Totals = merged.Totals

	return &domain.ChangedEntry{
		NewEntry:   merged,
		OldEntry:   original,
		EntryState: domain.EntryStateModified,
	}, nil, nil
}

// InheritNumbers copies the numbers of already stored operations onto the
// matching nodes of a partial input, so that only genuinely new operations
// are numbered.
func (r *ChangeReconciler) InheritNumbers(order *domain.CustomerOrder, stored *entity.Order) {
	if order == nil || stored == nil {
		return
	}
	if order.Number == "" {
		order.Number = stored.Number
	}
	storedNumbers := make(map[string]string, len(stored.Shipments)+len(stored.InPayments))
	for _, s := range stored.Shipments {
		storedNumbers[s.ID] = s.Number
	}
	for _, p := range stored.InPayments {
		storedNumbers[p.ID] = p.Number
	}
	for _, s := range order.Shipments {
		if s.Number == "" && s.ID != "" {
			s.Number = storedNumbers[s.ID]
		}
	}
	for _, p := range order.InPayments {
		if p.Number == "" && p.ID != "" {
			p.Number = storedNumbers[p.ID]
		}
	}
}
