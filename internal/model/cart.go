package model

import "strings"

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Customization struct {
	Text         string    `json:"text,omitempty"`
	Image        string    `json:"image,omitempty"`
	TextPosition *Position `json:"textPosition,omitempty"`
	TextColor    string    `json:"textColor,omitempty"`
}

func (c *Customization) Clone() *Customization {
	if c == nil {
		return nil
	}
	out := *c
	if c.TextPosition != nil {
		pos := *c.TextPosition
		out.TextPosition = &pos
	}
	return &out
}

type CartItem struct {
	ID            string         `json:"id"`
	ProductID     string         `json:"productId" validate:"required"`
	Name          string         `json:"name" validate:"required"`
	Price         int64          `json:"price" validate:"gt=0"`
	Image         string         `json:"image"`
	Quantity      int            `json:"quantity" validate:"gte=1"`
	Size          string         `json:"size" validate:"required"`
	Color         string         `json:"color" validate:"required"`
	Customization *Customization `json:"customization,omitempty"`
}

// VariantKey is the merge key for cart lines.
func VariantKey(productID, size, color string) string {
	return strings.Join([]string{productID, size, color}, "-")
}

// NewCartItem snapshots product into a cart line. An empty color falls back
// to the product's first color.
func NewCartItem(p Product, size, color string, quantity int) CartItem {
	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return CartItem{
		ID:        VariantKey(p.ID, size, color),
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     image,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	}
}

func (i CartItem) Clone() CartItem {
	out := i
	out.Customization = i.Customization.Clone()
	return out
}

func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
