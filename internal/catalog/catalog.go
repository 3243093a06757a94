package catalog

import (
	"sort"
	"strings"

	"shoestore/internal/domain"
)

// Catalog holds the static product list loaded once at startup. All query
// methods are pure reads; empty results are valid, not errors.
type Catalog struct {
	products []domain.Product
}

func New() *Catalog {
	return &Catalog{products: seedProducts()}
}

// NewWith builds a catalog over an explicit product list (tests).
func NewWith(products []domain.Product) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (c *Catalog) ByCategory(name string) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return strings.EqualFold(p.Category, name)
	})
}

func (c *Catalog) ByBrand(name string) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return strings.EqualFold(p.Brand, name)
	})
}

// ByPriceRange matches price in [min, max] inclusive. Bounds are taken as
// given; callers decide whether to normalize a reversed range.
func (c *Catalog) ByPriceRange(min, max float64) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Price >= min && p.Price <= max
	})
}

func (c *Catalog) OnSale() []domain.Product {
	return c.filter(domain.Product.OnSale)
}

func (c *Catalog) InStock() []domain.Product {
	return c.filter(func(p domain.Product) bool { return p.InStock })
}

// Search matches the query as a case-insensitive substring against name,
// brand, category, description, or any feature string.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(query)
	return c.filter(func(p domain.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			return true
		}
		for _, f := range p.Features {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	})
}

// BySize matches products whose size list contains the literal token.
func (c *Catalog) BySize(size string) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		for _, s := range p.Sizes {
			if s == size {
				return true
			}
		}
		return false
	})
}

// ByColor matches products with a color containing the given substring,
// case-insensitive.
func (c *Catalog) ByColor(color string) []domain.Product {
	needle := strings.ToLower(color)
	return c.filter(func(p domain.Product) bool {
		for _, col := range p.Colors {
			if strings.Contains(strings.ToLower(col), needle) {
				return true
			}
		}
		return false
	})
}

// TopRated returns the n highest-rated products, catalog order preserved
// among equal ratings.
func (c *Catalog) TopRated(n int) []domain.Product {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Brands lists distinct brand names in first-seen order.
func (c *Catalog) Brands() []string {
	return c.distinct(func(p domain.Product) string { return p.Brand })
}

// Categories lists distinct category names in first-seen order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(p domain.Product) string { return p.Category })
}

func (c *Catalog) filter(keep func(domain.Product) bool) []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) distinct(key func(domain.Product) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range c.products {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
