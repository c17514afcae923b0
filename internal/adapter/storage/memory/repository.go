package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/MikeRez0/ordermodule/internal/core/port"
)

var errReadOnly = errors.New("read only unit of work")

// Repository keeps orders in process memory. It backs the DEV mode and the
// service tests.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

var _ port.OrderRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{orders: make(map[string]*entity.Order)}
}

func (r *Repository) UnitOfWork(_ context.Context, readOnly bool) (port.OrderUnitOfWork, error) {
	return &unitOfWork{
		repo:     r,
		readOnly: readOnly,
		tracked:  make(map[string]*entity.Order),
		removed:  make(map[string]struct{}),
	}, nil
}

// Len returns the number of stored orders.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

type unitOfWork struct {
	repo     *Repository
	readOnly bool
	done     bool

	tracked map[string]*entity.Order
	added   []*entity.Order
	removed map[string]struct{}
}

func (u *unitOfWork) GetByIDs(_ context.Context, ids []string, group domain.ResponseGroup) ([]*entity.Order, error) {
	u.repo.mu.RLock()
	defer u.repo.mu.RUnlock()

	list := make([]*entity.Order, 0, len(ids))
	for _, id := range ids {
		stored, ok := u.repo.orders[id]
		if !ok {
			continue
		}
		o := stored.Clone()
		if u.readOnly {
			reduce(o, group)
		} else {
			u.tracked[o.ID] = o
		}
		list = append(list, o)
	}
	return list, nil
}

func (u *unitOfWork) Search(_ context.Context, criteria domain.OrderSearchCriteria) ([]string, int, error) {
	u.repo.mu.RLock()
	matched := make([]*entity.Order, 0, len(u.repo.orders))
	keyword := strings.ToLower(criteria.Keyword)
	for _, o := range u.repo.orders {
		if keyword == "" || matches(o, keyword) {
			matched = append(matched, o)
		}
	}
	u.repo.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedDate.Equal(matched[j].CreatedDate) {
			return matched[i].CreatedDate.After(matched[j].CreatedDate)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start := min(criteria.Start, total)
	end := total
	if criteria.Count > 0 {
		end = min(start+criteria.Count, total)
	}

	ids := make([]string, 0, end-start)
	for _, o := range matched[start:end] {
		ids = append(ids, o.ID)
	}
	return ids, total, nil
}

func (u *unitOfWork) Add(order *entity.Order) {
	u.added = append(u.added, order)
}

func (u *unitOfWork) RemoveByIDs(_ context.Context, ids []string) error {
	if u.readOnly {
		return errReadOnly
	}
	for _, id := range ids {
		u.removed[id] = struct{}{}
		delete(u.tracked, id)
	}
	return nil
}

func (u *unitOfWork) Commit(_ context.Context) error {
	if u.readOnly {
		return errReadOnly
	}
	if u.done {
		return errors.New("unit of work already finished")
	}

	u.repo.mu.Lock()
	defer u.repo.mu.Unlock()

	numbers := make(map[string]string, len(u.repo.orders))
	for id, o := range u.repo.orders {
		numbers[o.Number] = id
	}
	for _, o := range u.added {
		if id, ok := numbers[o.Number]; ok && o.Number != "" && id != o.ID {
			return domain.ErrConflictingData
		}
		if _, ok := u.repo.orders[o.ID]; ok {
			return domain.ErrConflictingData
		}
		numbers[o.Number] = o.ID
	}

	for id := range u.removed {
		delete(u.repo.orders, id)
	}
	for id, o := range u.tracked {
		u.repo.orders[id] = o.Clone()
	}
	for _, o := range u.added {
		u.repo.orders[o.ID] = o.Clone()
	}
	u.done = true
	return nil
}

func (u *unitOfWork) Rollback(_ context.Context) error {
	u.done = true
	return nil
}

func reduce(o *entity.Order, group domain.ResponseGroup) {
	if !group.Has(domain.WithItems) {
		o.Items = nil
	}
	if !group.Has(domain.WithShipments) {
		o.Shipments = nil
	}
	if !group.Has(domain.WithInPayments) {
		o.InPayments = nil
	}
	if !group.Has(domain.WithAddresses) {
		o.Addresses = nil
	}
	if !group.Has(domain.WithDiscounts) {
		o.Discounts = nil
	}
}

func matches(o *entity.Order, keyword string) bool {
	for _, field := range []string{o.Number, o.CustomerName, o.StoreName, o.Comment} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}
