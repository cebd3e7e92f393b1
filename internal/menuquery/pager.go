package menuquery

import "github.com/ACK1998/cafe-tamarind-sub001/internal/model"

// Pager accumulates a running "displayed" list over the filtered catalog.
// LoadMore appends the next page without replacing earlier ones; any filter
// change resets back to page 1.
type Pager struct {
	source    []model.MenuItem
	cfg       Config
	pageSize  int
	page      int
	filtered  []model.MenuItem
	displayed []model.MenuItem
}

// NewPager builds a pager over the raw catalog and computes the first page.
func NewPager(items []model.MenuItem, cfg Config, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 20
	}
	p := &Pager{source: items, pageSize: pageSize}
	p.Reset(cfg)
	return p
}

// Reset applies a new filter configuration and synchronously recomputes the
// first page.
func (p *Pager) Reset(cfg Config) {
	p.cfg = cfg
	p.page = 1
	p.filtered = FilteredAndSorted(p.source, cfg)
	first, _ := Paginate(p.filtered, p.pageSize, 1)
	p.displayed = first
}

// LoadMore appends the next page to the displayed list. Returns false when
// no further items remain.
func (p *Pager) LoadMore() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	next, _ := Paginate(p.filtered, p.pageSize, p.page)
	p.displayed = append(p.displayed, next...)
	return true
}

// Displayed returns the accumulated pages.
func (p *Pager) Displayed() []model.MenuItem {
	return p.displayed
}

// HasNext reports whether another page exists beyond the displayed list.
func (p *Pager) HasNext() bool {
	return p.page*p.pageSize < len(p.filtered)
}

// Groups returns the displayed list bucketed for rendering.
func (p *Pager) Groups() []CategoryGroup {
	return GroupByCategory(p.displayed, p.cfg.SortBy)
}

// FilteredCount is the size of the full filtered set.
func (p *Pager) FilteredCount() int {
	return len(p.filtered)
}
