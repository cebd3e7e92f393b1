// Package menuquery is the pure client-side query engine over the menu
// catalog: filtering, sorting, category grouping, and pagination. All
// functions coerce nil/empty input to empty output rather than panicking —
// consumers never have to guard.
package menuquery

import (
	"sort"
	"strings"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// StockFilter narrows the catalog by stock state.
type StockFilter string

const (
	StockAll StockFilter = "all"
	StockIn  StockFilter = "in-stock"
	StockOut StockFilter = "out-of-stock"
)

// Sort keys accepted by Config.SortBy. An empty string selects the default
// ordering (rated first, then category, then name).
const (
	SortRatingHigh = "rating-high"
	SortRatingLow  = "rating-low"
	SortName       = "name"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
)

// CategoryUngrouped is the sentinel bucket for items without a category.
const CategoryUngrouped = "uncategorized"

// GroupAll is the pseudo-category used when grouping is suppressed.
const GroupAll = "all"

// Config is the filter/sort configuration for one catalog view.
type Config struct {
	Category string            // exact match; empty or "any" matches all
	Search   string            // case-insensitive substring on name or description
	Stock    StockFilter       // defaults to all
	SortBy   string
	Tier     model.PricingTier // which unit price the price sorts use
}

// FilteredAndSorted returns the subset of items matching cfg, ordered per
// cfg.SortBy. The input slice is never mutated.
func FilteredAndSorted(items []model.MenuItem, cfg Config) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(cfg.Search))

	for _, item := range items {
		if cfg.Category != "" && cfg.Category != "any" && item.Category != cfg.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		switch cfg.Stock {
		case StockIn:
			if !item.Orderable() {
				continue
			}
		case StockOut:
			if item.Orderable() {
				continue
			}
		}
		out = append(out, item)
	}

	sortItems(out, cfg.SortBy, cfg.Tier)
	return out
}

func sortItems(items []model.MenuItem, sortBy string, tier model.PricingTier) {
	switch sortBy {
	case SortRatingHigh:
		sort.SliceStable(items, func(i, j int) bool { return ratingLess(items[i], items[j], true) })
	case SortRatingLow:
		sort.SliceStable(items, func(i, j int) bool { return ratingLess(items[i], items[j], false) })
	case SortName:
		sort.SliceStable(items, func(i, j int) bool { return nameLess(items[i], items[j]) })
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return effectivePrice(items[i], tier) < effectivePrice(items[j], tier)
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return effectivePrice(items[i], tier) > effectivePrice(items[j], tier)
		})
	default:
		// Rated items before unrated, then category asc, then name asc.
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if (a.Rating != nil) != (b.Rating != nil) {
				return a.Rating != nil
			}
			if a.Category != b.Category {
				return lower(a.Category) < lower(b.Category)
			}
			return nameLess(a, b)
		})
	}
}

// ratingLess orders rated items among themselves by rating (desc when high),
// places all unrated items after all rated ones, and breaks every tie by
// name ascending.
func ratingLess(a, b model.MenuItem, high bool) bool {
	switch {
	case a.Rating != nil && b.Rating == nil:
		return true
	case a.Rating == nil && b.Rating != nil:
		return false
	case a.Rating == nil && b.Rating == nil:
		return nameLess(a, b)
	}
	if *a.Rating != *b.Rating {
		if high {
			return *a.Rating > *b.Rating
		}
		return *a.Rating < *b.Rating
	}
	return nameLess(a, b)
}

func nameLess(a, b model.MenuItem) bool {
	return lower(a.Name) < lower(b.Name)
}

func lower(s string) string { return strings.ToLower(s) }

// effectivePrice treats a missing price as 0 for sorting purposes.
func effectivePrice(item model.MenuItem, tier model.PricingTier) float64 {
	f, _ := item.EffectiveUnitPrice(tier).Float64()
	return f
}

// CategoryGroup is one display bucket, in first-occurrence order.
type CategoryGroup struct {
	Category string           `json:"category"`
	Items    []model.MenuItem `json:"items"`
}

// GroupByCategory buckets items by category, preserving item order within
// each bucket. Under a rating-based sort the items are returned as a single
// pseudo-group — splitting by category would destroy the rating ordering.
func GroupByCategory(items []model.MenuItem, sortBy string) []CategoryGroup {
	if sortBy == SortRatingHigh || sortBy == SortRatingLow {
		return []CategoryGroup{{Category: GroupAll, Items: append([]model.MenuItem{}, items...)}}
	}

	index := make(map[string]int)
	groups := []CategoryGroup{}
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = CategoryUngrouped
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Paginate returns items[(page-1)*size : page*size] with bounds clamping,
// and whether a further page exists.
func Paginate(items []model.MenuItem, pageSize, page int) ([]model.MenuItem, bool) {
	if pageSize <= 0 || page <= 0 {
		return []model.MenuItem{}, false
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []model.MenuItem{}, false
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return append([]model.MenuItem{}, items[start:end]...), end < len(items)
}
