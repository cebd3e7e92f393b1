package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/menuquery"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

const menuCacheKeyPrefix = "menu:catalog:"

// MenuService serves catalog views: the raw catalog is fetched from the
// upstream once per cache window, and all filtering/sorting/grouping/paging
// happens here.
type MenuService interface {
	Browse(ctx context.Context, q dto.MenuQuery) (*dto.MenuPageResponse, error)
	Item(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	InvalidateCatalog(ctx context.Context, audience string)
}

type menuService struct {
	api *upstream.Client
	rdb *redis.Client
	ttl time.Duration
}

func NewMenuService(api *upstream.Client, rdb *redis.Client, ttl time.Duration) MenuService {
	return &menuService{api: api, rdb: rdb, ttl: ttl}
}

// catalog is cache-aside over Redis: serve the cached blob when fresh, else
// fetch from the upstream and repopulate.
func (s *menuService) catalog(ctx context.Context, audience string) ([]model.MenuItem, error) {
	key := menuCacheKeyPrefix + audience

	if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var items []model.MenuItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		// Corrupt cache entry — fall through to a fresh fetch.
	}

	items, err := s.api.ListMenu(ctx, audience)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(items); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
			log.Warn().Err(err).Str("audience", audience).Msg("menu cache write failed")
		}
	}
	return items, nil
}

func (s *menuService) Browse(ctx context.Context, q dto.MenuQuery) (*dto.MenuPageResponse, error) {
	items, err := s.catalog(ctx, q.Audience)
	if err != nil {
		return nil, err
	}

	cfg := menuquery.Config{
		Category: q.Category,
		Search:   q.Search,
		Stock:    menuquery.StockFilter(q.Stock),
		SortBy:   q.SortBy,
		Tier:     model.PricingTier(q.Tier),
	}
	filtered := menuquery.FilteredAndSorted(items, cfg)
	page, hasNext := menuquery.Paginate(filtered, q.Limit, q.Page)

	return &dto.MenuPageResponse{
		Items:         page,
		Groups:        menuquery.GroupByCategory(page, q.SortBy),
		Page:          q.Page,
		Limit:         q.Limit,
		TotalFiltered: len(filtered),
		HasNext:       hasNext,
	}, nil
}

func (s *menuService) Item(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	return s.api.GetMenuItem(ctx, id)
}

func (s *menuService) Categories(ctx context.Context) ([]string, error) {
	return s.api.ListCategories(ctx)
}

// InvalidateCatalog drops the cached catalog after an admin menu mutation.
func (s *menuService) InvalidateCatalog(ctx context.Context, audience string) {
	if audience == "" {
		s.rdb.Del(ctx, menuCacheKeyPrefix+"customer", menuCacheKeyPrefix+"employee")
		return
	}
	s.rdb.Del(ctx, menuCacheKeyPrefix+audience)
}
