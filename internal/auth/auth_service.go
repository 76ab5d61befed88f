package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	autherrors "github.com/vetrivel962969-dotcom/Paperid/internal/auth/errors"
	"github.com/vetrivel962969-dotcom/Paperid/internal/customer"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/zap"
)

const (
	RoleCustomer = "CUSTOMER"
	GuestName    = "Guest"

	defaultTokenTTL = 24 * time.Hour
)

// Service signs users in by email alone. There is no password check; any
// syntactically valid address is accepted and unknown addresses get a new
// account named Guest.
type Service struct {
	users    customer.Repository
	secret   []byte
	ttl      time.Duration
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

type Deps struct {
	Users    customer.Repository
	Secret   string
	TokenTTL time.Duration
	Logger   *zap.Logger
}

func NewService(deps Deps) *Service {
	if deps.Users == nil {
		panic("user repository cannot be nil")
	}
	if deps.Secret == "" {
		panic("jwt secret cannot be empty")
	}
	if deps.TokenTTL <= 0 {
		deps.TokenTTL = defaultTokenTTL
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Service{
		users:    deps.Users,
		secret:   []byte(deps.Secret),
		ttl:      deps.TokenTTL,
		validate: validator.New(),
		logger:   deps.Logger,
		now:      time.Now,
	}
}

func (s *Service) Login(ctx context.Context, email string) (string, model.User, error) {
	email = strings.TrimSpace(email)
	if err := s.validate.Struct(LoginRequest{Email: email}); err != nil {
		return "", model.User{}, autherrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, customer.ErrCustomerNotFound) {
		user, err = s.users.Create(ctx, model.User{
			ID:    uuid.NewString(),
			Name:  GuestName,
			Email: email,
		})
		if err == nil {
			s.logger.Info("guest account created", zap.String("user_id", user.ID))
		}
	}
	if err != nil {
		return "", model.User{}, err
	}

	token, err := s.generateToken(user.ID, RoleCustomer)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return "", model.User{}, autherrors.ErrTokenGenerationFailed
	}
	return token, user, nil
}

// Me returns the account behind a validated user id.
func (s *Service) Me(ctx context.Context, userID string) (model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, autherrors.ErrUnauthorized
	}
	return u, nil
}

func (s *Service) TokenTTL() time.Duration {
	return s.ttl
}

func (s *Service) generateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     s.now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
