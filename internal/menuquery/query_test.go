package menuquery

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

func rated(name, category string, rating float64) model.MenuItem {
	r := rating
	return model.MenuItem{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Price:     decimal.NewFromInt(50),
		Stock:     5,
		Available: true,
		Rating:    &r,
	}
}

func unrated(name, category string) model.MenuItem {
	return model.MenuItem{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Price:     decimal.NewFromInt(50),
		Stock:     5,
		Available: true,
	}
}

func names(items []model.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestSortRatingHighPlacesUnratedLast(t *testing.T) {
	items := []model.MenuItem{
		unrated("Zucchini Fries", "snacks"),
		rated("Masala Chai", "beverages", 4.2),
		unrated("Akki Roti", "mains"),
		rated("Filter Coffee", "beverages", 4.8),
		rated("Lemon Tea", "beverages", 4.2),
	}

	got := FilteredAndSorted(items, Config{SortBy: SortRatingHigh})

	// Rated desc; equal ratings tie-break by name; unrated after all rated,
	// themselves name-ascending.
	assert.Equal(t, []string{
		"Filter Coffee", "Lemon Tea", "Masala Chai", "Akki Roti", "Zucchini Fries",
	}, names(got))
}

func TestSortRatingLowStillPlacesUnratedLast(t *testing.T) {
	items := []model.MenuItem{
		unrated("Banana Chips", "snacks"),
		rated("Filter Coffee", "beverages", 4.8),
		rated("Masala Chai", "beverages", 3.1),
	}

	got := FilteredAndSorted(items, Config{SortBy: SortRatingLow})
	assert.Equal(t, []string{"Masala Chai", "Filter Coffee", "Banana Chips"}, names(got))
}

func TestFilterCategoryAndSearchCompose(t *testing.T) {
	items := []model.MenuItem{
		rated("Masala Chai", "beverages", 4.2),
		rated("Masala Dosa", "mains", 4.5),
		rated("Filter Coffee", "beverages", 4.8),
	}

	got := FilteredAndSorted(items, Config{Category: "beverages", Search: "masala"})
	require.Len(t, got, 1)
	assert.Equal(t, "Masala Chai", got[0].Name)
}

func TestSearchMatchesDescription(t *testing.T) {
	spiced := model.MenuItem{
		ID: uuid.New(), Name: "House Blend", Category: "beverages",
		Description: "spiced with cardamom", Price: decimal.NewFromInt(40),
		Stock: 3, Available: true,
	}
	items := []model.MenuItem{spiced, unrated("Plain Tea", "beverages")}

	got := FilteredAndSorted(items, Config{Search: "CARDAMOM"})
	require.Len(t, got, 1)
	assert.Equal(t, "House Blend", got[0].Name)
}

func TestStockFilter(t *testing.T) {
	soldOut := unrated("Cake", "bakes")
	soldOut.Stock = 0
	items := []model.MenuItem{unrated("Tea", "beverages"), soldOut}

	inStock := FilteredAndSorted(items, Config{Stock: StockIn})
	require.Len(t, inStock, 1)
	assert.Equal(t, "Tea", inStock[0].Name)

	outOfStock := FilteredAndSorted(items, Config{Stock: StockOut})
	require.Len(t, outOfStock, 1)
	assert.Equal(t, "Cake", outOfStock[0].Name)
}

func TestGroupingSuppressedUnderRatingSort(t *testing.T) {
	items := []model.MenuItem{
		rated("Filter Coffee", "beverages", 4.8),
		rated("Masala Dosa", "mains", 4.5),
		rated("Masala Chai", "beverages", 4.2),
	}
	sorted := FilteredAndSorted(items, Config{SortBy: SortRatingHigh})

	groups := GroupByCategory(sorted, SortRatingHigh)
	require.Len(t, groups, 1, "rating sort must not be split across category buckets")
	assert.Equal(t, GroupAll, groups[0].Category)
	assert.Equal(t, []string{"Filter Coffee", "Masala Dosa", "Masala Chai"}, names(groups[0].Items))
}

func TestGroupByCategoryKeepsFirstOccurrenceOrder(t *testing.T) {
	items := []model.MenuItem{
		unrated("Dosa", "mains"),
		unrated("Tea", "beverages"),
		unrated("Idli", "mains"),
		unrated("Brownie", ""),
	}

	groups := GroupByCategory(items, "")
	require.Len(t, groups, 3)
	assert.Equal(t, "mains", groups[0].Category)
	assert.Equal(t, "beverages", groups[1].Category)
	assert.Equal(t, CategoryUngrouped, groups[2].Category)
	assert.Equal(t, []string{"Dosa", "Idli"}, names(groups[0].Items))
}

func catalog(n int) []model.MenuItem {
	items := make([]model.MenuItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, unrated(fmt.Sprintf("Item %03d", i), "mains"))
	}
	return items
}

func TestPaginateBounds(t *testing.T) {
	items := catalog(45)

	page, hasNext := Paginate(items, 20, 1)
	assert.Len(t, page, 20)
	assert.True(t, hasNext)

	page, hasNext = Paginate(items, 20, 2)
	assert.Len(t, page, 20)
	assert.True(t, hasNext)

	page, hasNext = Paginate(items, 20, 3)
	assert.Len(t, page, 5)
	assert.False(t, hasNext)

	page, hasNext = Paginate(items, 20, 4)
	assert.Empty(t, page)
	assert.False(t, hasNext)
}

func TestPagerAccumulatesPages(t *testing.T) {
	p := NewPager(catalog(45), Config{}, 20)

	assert.Len(t, p.Displayed(), 20)
	assert.True(t, p.HasNext())
	assert.Equal(t, 45, p.FilteredCount())

	require.True(t, p.LoadMore())
	assert.Len(t, p.Displayed(), 40)
	assert.True(t, p.HasNext())

	require.True(t, p.LoadMore())
	assert.Len(t, p.Displayed(), 45)
	assert.False(t, p.HasNext())

	// Exhausted: no further page, displayed list unchanged.
	assert.False(t, p.LoadMore())
	assert.Len(t, p.Displayed(), 45)
}

func TestPagerResetDropsAccumulation(t *testing.T) {
	items := append(catalog(30), rated("Special Dosa", "specials", 4.9))
	p := NewPager(items, Config{}, 20)
	require.True(t, p.LoadMore())
	assert.Len(t, p.Displayed(), 31)

	p.Reset(Config{Category: "specials"})
	assert.Len(t, p.Displayed(), 1)
	assert.False(t, p.HasNext())
	assert.Equal(t, 1, p.FilteredCount())
}

func TestFilteredAndSortedDoesNotMutateInput(t *testing.T) {
	items := []model.MenuItem{
		unrated("Zebra Cake", "bakes"),
		unrated("Apple Pie", "bakes"),
	}
	_ = FilteredAndSorted(items, Config{SortBy: SortName})
	assert.Equal(t, "Zebra Cake", items[0].Name, "input order must be preserved")
}
