package customer

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customer_service.go -destination=../mock/customer/customer_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, customerID string) (model.User, error)
	UpdateProfile(ctx context.Context, customerID string, req model.ProfileUpdate) (model.User, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(r Repository, logger ...*zap.Logger) Service {
	if r == nil {
		panic("customer repository cannot be nil")
	}
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:     r,
		validate: validator.New(),
		logger:   l,
	}
}

func (s *service) GetProfile(ctx context.Context, customerID string) (model.User, error) {
	return s.repo.GetByID(ctx, customerID)
}

func (s *service) UpdateProfile(ctx context.Context, customerID string, req model.ProfileUpdate) (model.User, error) {
	if req.Empty() {
		return model.User{}, ErrEmptyUpdate
	}
	if err := s.validate.Struct(req); err != nil {
		return model.User{}, apperror.Wrap(ErrInvalidProfile, err)
	}

	user, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return model.User{}, err
	}

	updated, err := s.repo.Update(ctx, req.Apply(user))
	if err != nil {
		s.logger.Error("failed to update profile", zap.String("user_id", customerID), zap.Error(err))
		return model.User{}, err
	}
	return updated, nil
}
