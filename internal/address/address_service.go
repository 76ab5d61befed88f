package address

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

type Service interface {
	List(ctx context.Context, userID string) ([]model.Address, error)
	Create(ctx context.Context, userID string, req model.Address) (model.Address, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(r Repository) Service {
	return &service{
		repo:     r,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context, userID string) ([]model.Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID string, req model.Address) (model.Address, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Street = strings.TrimSpace(req.Street)
	req.City = strings.TrimSpace(req.City)
	req.Country = strings.TrimSpace(req.Country)
	if err := s.validate.Struct(req); err != nil {
		return model.Address{}, apperror.Wrap(ErrInvalidAddress, err)
	}
	req.ID = uuid.NewString()
	return s.repo.Create(ctx, userID, req)
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
