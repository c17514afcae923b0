package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
)

type StoreService struct {
	mu     sync.RWMutex
	stores map[string]*domain.Store
}

func NewStoreService(stores ...*domain.Store) *StoreService {
	s := &StoreService{stores: make(map[string]*domain.Store, len(stores))}
	for _, store := range stores {
		s.Put(store)
	}
	return s
}

func (s *StoreService) Put(store *domain.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *store
	c.Settings = maps.Clone(store.Settings)
	s.stores[store.ID] = &c
}

func (s *StoreService) GetByID(_ context.Context, storeID string) (*domain.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	store, ok := s.stores[storeID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	c := *store
	c.Settings = maps.Clone(store.Settings)
	return &c, nil
}
