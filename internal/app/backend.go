package app

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vetrivel962969-dotcom/Paperid/internal/address"
	"github.com/vetrivel962969-dotcom/Paperid/internal/artwork"
	"github.com/vetrivel962969-dotcom/Paperid/internal/auth"
	"github.com/vetrivel962969-dotcom/Paperid/internal/catalog"
	"github.com/vetrivel962969-dotcom/Paperid/internal/customer"
	"github.com/vetrivel962969-dotcom/Paperid/internal/order"
	"github.com/vetrivel962969-dotcom/Paperid/internal/outbox"
	"github.com/vetrivel962969-dotcom/Paperid/internal/payment"
	"github.com/vetrivel962969-dotcom/Paperid/internal/product"
	"go.uber.org/zap"
)

// Backend holds the services behind /api/v1. The mock gateway calls them
// directly; the router exposes them over HTTP.
type Backend struct {
	Catalog   catalog.Catalog
	Products  product.Service
	Auth      *auth.Service
	Customers customer.Service
	Addresses address.Service
	Payments  payment.Service
	Orders    order.Service
	Outbox    outbox.Repository
	Artwork   artwork.Service
}

type BackendDeps struct {
	Catalog      catalog.Catalog
	Redis        *redis.Client
	ArtworkStore artwork.Store
	JWTSecret    string
	TokenTTL     time.Duration
	Logger       *zap.Logger
}

func NewBackend(deps BackendDeps) *Backend {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	logger := deps.Logger

	// --- Repositories ---
	customerRepo := customer.NewRepository()
	addressRepo := address.NewRepository()
	paymentRepo := payment.NewRepository()
	orderRepo := order.NewRepository()
	outboxRepo := outbox.NewRepository()

	var seq order.Sequencer = order.RandomSequencer{}
	if deps.Redis != nil {
		seq = order.NewRedisSequencer(deps.Redis)
	}

	// --- Services ---
	return &Backend{
		Catalog:  deps.Catalog,
		Products: product.NewService(deps.Catalog),
		Auth: auth.NewService(auth.Deps{
			Users:    customerRepo,
			Secret:   deps.JWTSecret,
			TokenTTL: deps.TokenTTL,
			Logger:   logger.Named("auth.service"),
		}),
		Customers: customer.NewService(customerRepo, logger),
		Addresses: address.NewService(addressRepo),
		Payments:  payment.NewService(paymentRepo),
		Orders: order.NewService(order.Deps{
			Repo:       orderRepo,
			OutboxRepo: outboxRepo,
			Sequencer:  seq,
			Logger:     logger.Named("order.service"),
		}),
		Outbox:  outboxRepo,
		Artwork: artwork.NewService(deps.ArtworkStore, logger),
	}
}
