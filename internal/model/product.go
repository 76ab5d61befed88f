// Package model holds the storefront entities shared by the client stores,
// the data gateway and the reference backend.
package model

type Category string

const (
	CategoryAll        Category = "All"
	CategoryAnime      Category = "Anime"
	CategoryCricket    Category = "Cricket"
	CategoryFanmade    Category = "Fanmade"
	CategoryFamily     Category = "Family"
	CategoryLovers     Category = "Lovers"
	CategoryStreetwear Category = "Streetwear"
)

var knownCategories = map[Category]struct{}{
	CategoryAnime:      {},
	CategoryCricket:    {},
	CategoryFanmade:    {},
	CategoryFamily:     {},
	CategoryLovers:     {},
	CategoryStreetwear: {},
}

// Valid reports whether c is a concrete product category. All is a
// filter value only and is not valid on a product.
func (c Category) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

type Product struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Price          int64    `json:"price" yaml:"price"`
	OriginalPrice  *int64   `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Category       Category `json:"category" yaml:"category"`
	Images         []string `json:"images" yaml:"images"`
	Sizes          []string `json:"sizes" yaml:"sizes"`
	Colors         []string `json:"colors" yaml:"colors"`
	IsCustomizable bool     `json:"isCustomizable" yaml:"isCustomizable"`
	IsNewArrival   bool     `json:"isNewArrival,omitempty" yaml:"isNewArrival,omitempty"`
	IsBestSeller   bool     `json:"isBestSeller,omitempty" yaml:"isBestSeller,omitempty"`
	Rating         float64  `json:"rating" yaml:"rating"`
	ReviewsCount   int      `json:"reviewsCount" yaml:"reviewsCount"`
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}

func (p Product) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

func (p Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

// Discount is the percentage off the original price, or 0.
func (p Product) Discount() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int((*p.OriginalPrice - p.Price) * 100 / *p.OriginalPrice)
}

type CategoryInfo struct {
	Name  Category `json:"name" yaml:"name"`
	Icon  string   `json:"icon" yaml:"icon"`
	Image string   `json:"image" yaml:"image"`
}

type ProductFilter struct {
	Category Category `json:"category,omitempty" form:"category"`
}

// Matches reports whether p passes the filter. A nil filter, an empty
// category or All match every product.
func (f *ProductFilter) Matches(p Product) bool {
	if f == nil || f.Category == "" || f.Category == CategoryAll {
		return true
	}
	return p.Category == f.Category
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
