package product

import (
	"context"
	"strings"

	"github.com/vetrivel962969-dotcom/Paperid/internal/catalog"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

type Service interface {
	List(ctx context.Context, q ListQuery) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (model.Product, error)
	Categories(ctx context.Context) ([]model.CategoryInfo, error)
}

type service struct {
	catalog catalog.Catalog
}

func NewService(c catalog.Catalog) Service {
	if c == nil {
		panic("catalog cannot be nil")
	}
	return &service{catalog: c}
}

// List never fails for an unknown category; it just matches nothing.
func (s *service) List(ctx context.Context, q ListQuery) ([]model.Product, error) {
	products := s.catalog.ListProducts(&model.ProductFilter{Category: model.Category(q.Category)})

	term := strings.ToLower(strings.TrimSpace(q.Search))
	if term == "" {
		return products, nil
	}
	out := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (model.Product, error) {
	p, ok := s.catalog.GetProduct(id)
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Categories(ctx context.Context) ([]model.CategoryInfo, error) {
	return s.catalog.ListCategories(), nil
}
