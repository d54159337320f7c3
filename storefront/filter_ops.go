package storefront

import (
	"github.com/jrsteele09/go-storefront-client/filter"
	"github.com/jrsteele09/go-storefront-client/internal/timer"
)

// CatalogView derives the currently visible page from the catalog snapshot
// and the filter criteria. The derivation runs synchronously on every call,
// so a criteria or catalog change is always reflected before the next read
// and the page index is always valid for the current result set.
func (c *Client) CatalogView() filter.View {
	products := c.stores.Catalog.Products()

	c.mu.Lock()
	defer c.mu.Unlock()
	return filter.Apply(products, c.criteria, c.pageSize)
}

// Criteria returns a copy of the current filter criteria.
func (c *Client) Criteria() filter.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()

	criteria := c.criteria
	criteria.Colors = copySet(c.criteria.Colors)
	criteria.Storages = copySet(c.criteria.Storages)
	return criteria
}

// SetCategory selects a category filter. Page resets to 0.
func (c *Client) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.SetCategory(category)
}

// ToggleColor flips a color selection. Page resets to 0.
func (c *Client) ToggleColor(color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.ToggleColor(color)
}

// ToggleStorage flips a storage-size selection. Page resets to 0.
func (c *Client) ToggleStorage(size string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.ToggleStorage(size)
}

// SetPage moves to a page; the view clamps it against the filtered set.
func (c *Client) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.SetPage(page)
}

// SetSearchQuery applies a search query immediately. Page resets to 0.
func (c *Client) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.SetSearchQuery(query)
}

// SearchProducts applies a search query after the debounce delay. Each
// keystroke cancels the previously pending one; the returned token cancels
// this one (e.g. when the search box is disposed).
func (c *Client) SearchProducts(query string) timer.CancelToken {
	return c.debouncer.Schedule(func() {
		c.SetSearchQuery(query)
	})
}

func copySet(set map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for k := range set {
		out[k] = struct{}{}
	}
	return out
}
