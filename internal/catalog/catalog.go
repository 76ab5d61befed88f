// Package catalog provides read-only access to the product and category
// seed dataset.
package catalog

import (
	"fmt"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

// Catalog is safe for concurrent use; it never mutates after New.
type Catalog interface {
	ListProducts(filter *model.ProductFilter) []model.Product
	GetProduct(id string) (model.Product, bool)
	ListCategories() []model.CategoryInfo
}

type catalog struct {
	products   []model.Product
	byID       map[string]int
	categories []model.CategoryInfo
}

// New builds a catalog from ds after checking its invariants.
func New(ds Dataset) (Catalog, error) {
	c := &catalog{
		products:   make([]model.Product, 0, len(ds.Products)),
		byID:       make(map[string]int, len(ds.Products)),
		categories: append([]model.CategoryInfo(nil), ds.Categories...),
	}
	for _, p := range ds.Products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	for _, cat := range c.categories {
		if !cat.Name.Valid() {
			return nil, fmt.Errorf("catalog: unknown category %q", cat.Name)
		}
	}
	return c, nil
}

// Default returns the catalog built from the embedded seed. It panics if the
// embedded seed is malformed.
func Default() Catalog {
	ds, err := LoadSeed()
	if err != nil {
		panic(err)
	}
	c, err := New(ds)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *catalog) ListProducts(filter *model.ProductFilter) []model.Product {
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (c *catalog) GetProduct(id string) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i].Clone(), true
}

func (c *catalog) ListCategories() []model.CategoryInfo {
	return append([]model.CategoryInfo(nil), c.categories...)
}

func validateProduct(p model.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("catalog: product with empty id")
	case p.Price <= 0:
		return fmt.Errorf("catalog: product %s: price must be positive", p.ID)
	case !p.Category.Valid():
		return fmt.Errorf("catalog: product %s: unknown category %q", p.ID, p.Category)
	case len(p.Images) == 0:
		return fmt.Errorf("catalog: product %s: no images", p.ID)
	case len(p.Sizes) == 0:
		return fmt.Errorf("catalog: product %s: no sizes", p.ID)
	case len(p.Colors) == 0:
		return fmt.Errorf("catalog: product %s: no colors", p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("catalog: product %s: rating %.1f out of range", p.ID, p.Rating)
	case p.ReviewsCount < 0:
		return fmt.Errorf("catalog: product %s: negative reviews count", p.ID)
	}
	return nil
}
