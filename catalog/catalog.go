// Package catalog holds the client-side mirror of the storefront's product,
// cart, and order data. All of it is server-authoritative: the store only
// ever writes whole snapshots received from the backend.
package catalog

import (
	"strings"
	"time"
)

// ColorOption is a product color variant and its availability.
type ColorOption struct {
	Color   string `json:"color"`
	InStock bool   `json:"in_stock"`
}

// StorageOption is a product storage-size variant and its availability.
type StorageOption struct {
	Size    string `json:"size"`
	InStock bool   `json:"in_stock"`
}

// Product is a catalog entry as returned by GET /products.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	Colors      []ColorOption   `json:"colors,omitempty"`
	Storage     []StorageOption `json:"storage,omitempty"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}

// InStockColors returns the case-folded colors currently available.
func (p Product) InStockColors() []string {
	colors := make([]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		if c.InStock {
			colors = append(colors, foldCase(c.Color))
		}
	}
	return colors
}

// InStockStorages returns the case-folded storage sizes currently available.
func (p Product) InStockStorages() []string {
	sizes := make([]string, 0, len(p.Storage))
	for _, s := range p.Storage {
		if s.InStock {
			sizes = append(sizes, foldCase(s.Size))
		}
	}
	return sizes
}

func foldCase(s string) string {
	return strings.ToLower(s)
}

// Category is a product category as returned by GET /category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
