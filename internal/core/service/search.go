package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"go.uber.org/zap"
)

type searchPage struct {
	ids   []string
	total int
}

// SearchService pages through stored orders. Pages of ids are cached under the
// search region token and the orders themselves come from the order cache.
type SearchService struct {
	repo   port.OrderRepository
	cache  port.Cache
	orders port.OrderService
	logger *zap.Logger
}

func NewSearchService(repo port.OrderRepository, cache port.Cache, orders port.OrderService,
	logger *zap.Logger) *SearchService {
	return &SearchService{
		repo:   repo,
		cache:  cache,
		orders: orders,
		logger: logger,
	}
}

func (s *SearchService) Search(ctx context.Context,
	criteria domain.OrderSearchCriteria) (*domain.OrderSearchResult, error) {
	if criteria.Start < 0 {
		return nil, fmt.Errorf("%w: negative start %d", domain.ErrValidation, criteria.Start)
	}
	switch {
	case criteria.Count <= 0:
		criteria.Count = defaultSearchCount
	case criteria.Count > maxSearchCount:
		criteria.Count = maxSearchCount
	}

	key := cacheKey(searchServiceName, "Search", criteria.Keyword,
		strconv.Itoa(criteria.Start), strconv.Itoa(criteria.Count))
	value, err := s.cache.GetOrCreateExclusive(ctx, key, []string{SearchRegionToken()},
		func(ctx context.Context) (any, error) {
			return s.searchPage(ctx, criteria)
		})
	if err != nil {
		return nil, err
	}
	page := value.(*searchPage)

	orders, err := s.orders.GetByIDs(ctx, page.ids, criteria.ResponseGroup)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.CustomerOrder, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	result := &domain.OrderSearchResult{
		TotalCount: page.total,
		Results:    make([]*domain.CustomerOrder, 0, len(page.ids)),
	}
	for _, id := range page.ids {
		if o, ok := byID[id]; ok {
			result.Results = append(result.Results, o)
		}
	}

	return result, nil
}

func (s *SearchService) searchPage(ctx context.Context, criteria domain.OrderSearchCriteria) (*searchPage, error) {
	uow, err := s.repo.UnitOfWork(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("open read unit of work: %w", err)
	}
	defer func() {
		if err := uow.Rollback(ctx); err != nil {
			s.logger.Warn("Release unit of work", zap.Error(err))
		}
	}()

	ids, total, err := uow.Search(ctx, criteria)
	if err != nil {
		s.logger.Error("Search orders", zap.String("keyword", criteria.Keyword), zap.Error(err))
		return nil, fmt.Errorf("search orders: %w", err)
	}

	return &searchPage{ids: ids, total: total}, nil
}
