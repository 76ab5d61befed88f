package payment

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

// Service manages saved payment methods. Nothing is charged; methods are
// display records only.
type Service interface {
	List(ctx context.Context, userID string) ([]model.PaymentMethod, error)
	Create(ctx context.Context, userID string, req model.PaymentMethod) (model.PaymentMethod, error)
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

func (s *service) List(ctx context.Context, userID string) ([]model.PaymentMethod, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID string, req model.PaymentMethod) (model.PaymentMethod, error) {
	if err := req.Validate(); err != nil {
		return model.PaymentMethod{}, apperror.Wrap(ErrInvalidPayment, err)
	}
	req = req.Clone()
	if req.UPI != nil {
		req.UPI.Handle = strings.ToLower(strings.TrimSpace(req.UPI.Handle))
	}
	if err := s.validate.Struct(req); err != nil {
		return model.PaymentMethod{}, apperror.Wrap(ErrInvalidPayment, err)
	}
	req.ID = uuid.NewString()
	return s.repo.Create(ctx, userID, req)
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
