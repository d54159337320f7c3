// Package filter derives the visible page of products from user-selected
// criteria. Derivation is pure and order-preserving: products are never
// reordered, only included or excluded.
package filter

import (
	"strings"

	"github.com/jrsteele09/go-storefront-client/catalog"
)

// DefaultPageSize is the number of products per catalog page.
const DefaultPageSize = 8

// Category grouping tables. Selecting "Accessories" or "Phones" matches any
// of these sub-categories rather than the literal string. The lists are
// closed; extending one is a deliberate catalog decision.
var (
	AccessorySubcategories = []string{
		"Bluetooth Speakers",
		"Headphones",
		"Wireless Earbuds",
		"Smartwatches",
		"Screen Protectors",
		"Phone Cases",
		"Chargers & Cables",
		"Power Banks",
		"Accessories",
		"Wearables",
	}

	PhoneSubcategories = []string{
		"Budget Phones",
		"Flagship Phones",
		"Gaming Phones",
		"Tablets",
	}
)

// Criteria is the user's current filter selection. It is ephemeral state,
// never persisted. Page is zero-based.
type Criteria struct {
	SearchQuery string
	Category    string
	Colors      map[string]struct{}
	Storages    map[string]struct{}
	Page        int
}

// NewCriteria starts with every offered color and storage selected, which
// matches everything, and page 0.
func NewCriteria(colorOptions, storageOptions []string) Criteria {
	c := Criteria{
		Colors:   make(map[string]struct{}, len(colorOptions)),
		Storages: make(map[string]struct{}, len(storageOptions)),
	}
	for _, color := range colorOptions {
		c.Colors[strings.ToLower(color)] = struct{}{}
	}
	for _, size := range storageOptions {
		c.Storages[strings.ToLower(size)] = struct{}{}
	}
	return c
}

// SetSearchQuery replaces the search query and resets the page.
func (c *Criteria) SetSearchQuery(query string) {
	c.SearchQuery = query
	c.Page = 0
}

// SetCategory replaces the selected category and resets the page.
func (c *Criteria) SetCategory(category string) {
	c.Category = category
	c.Page = 0
}

// ToggleColor adds or removes a color from the selection and resets the
// page.
func (c *Criteria) ToggleColor(color string) {
	key := strings.ToLower(color)
	if _, ok := c.Colors[key]; ok {
		delete(c.Colors, key)
	} else {
		c.Colors[key] = struct{}{}
	}
	c.Page = 0
}

// ToggleStorage adds or removes a storage size from the selection and
// resets the page.
func (c *Criteria) ToggleStorage(size string) {
	key := strings.ToLower(size)
	if _, ok := c.Storages[key]; ok {
		delete(c.Storages, key)
	} else {
		c.Storages[key] = struct{}{}
	}
	c.Page = 0
}

// SetPage moves to the given page. Clamping against the current result set
// happens at view time.
func (c *Criteria) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	c.Page = page
}

// Derive returns the products matching the criteria, preserving the source
// order. All four rules must hold for a product to be included.
func Derive(products []catalog.Product, criteria Criteria) []catalog.Product {
	filtered := make([]catalog.Product, 0, len(products))
	for _, product := range products {
		if !matchSearch(product, criteria.SearchQuery) {
			continue
		}
		if !matchCategory(product, criteria.Category) {
			continue
		}
		if !matchVariants(product.InStockColors(), criteria.Colors) {
			continue
		}
		if !matchVariants(product.InStockStorages(), criteria.Storages) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}

func matchSearch(product catalog.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(product.Name), q) ||
		strings.Contains(strings.ToLower(product.Brand), q)
}

func matchCategory(product catalog.Product, category string) bool {
	switch category {
	case "":
		return true
	case "Accessories":
		return containsString(AccessorySubcategories, product.Category)
	case "Phones":
		return containsString(PhoneSubcategories, product.Category)
	default:
		return product.Category == category
	}
}

// matchVariants applies the color/storage rule: a product with no in-stock
// variants is unconstrained by the filter; otherwise at least one selected
// value must be among the in-stock ones.
func matchVariants(available []string, selected map[string]struct{}) bool {
	if len(available) == 0 {
		return true
	}
	for _, v := range available {
		if _, ok := selected[v]; ok {
			return true
		}
	}
	return false
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
