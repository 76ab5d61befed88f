package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vetrivel962969-dotcom/Paperid/internal/app"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/money"
	"github.com/vetrivel962969-dotcom/Paperid/internal/storefront"
	"go.uber.org/zap"
)

// storefront drives the client core through a browse, cart, checkout and
// tracking session. It talks to STOREFRONT_API_URL when set and to the
// in-process mock backend otherwise.
func main() {
	_ = godotenv.Load()
	cfg := app.LoadConfig()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := newGateway(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build gateway", zap.Error(err))
	}

	if err := run(ctx, storefront.New(gw, storefront.WithLogger(logger)), logger); err != nil {
		logger.Fatal("storefront session failed", zap.Error(err))
	}
}

func newGateway(cfg app.Config, logger *zap.Logger) (gateway.Gateway, error) {
	if cfg.APIURL != "" {
		logger.Info("using http gateway", zap.String("url", cfg.APIURL))
		return gateway.WithTimeout(
			gateway.NewHTTPClient(cfg.APIURL, gateway.WithLogger(logger)),
			cfg.GatewayTimeout,
		), nil
	}

	store, err := app.NewArtworkStore(cfg)
	if err != nil {
		return nil, err
	}
	b := app.NewBackend(app.BackendDeps{
		ArtworkStore: store,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		Logger:       logger,
	})

	delay := cfg.GatewayDelay
	if delay == 0 {
		delay = -1
	}
	logger.Info("using mock gateway", zap.Duration("delay", cfg.GatewayDelay))
	mock := gateway.NewMock(gateway.MockDeps{
		Catalog:   b.Catalog,
		Auth:      b.Auth,
		Customers: b.Customers,
		Addresses: b.Addresses,
		Payments:  b.Payments,
		Orders:    b.Orders,
		Artwork:   b.Artwork,
		Delay:     delay,
		Logger:    logger,
	})
	return gateway.WithTimeout(mock, cfg.GatewayTimeout), nil
}

func run(ctx context.Context, s *storefront.App, logger *zap.Logger) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	products, err := s.Products(ctx, model.CategoryAnime)
	if err != nil {
		return err
	}
	logger.Info("browsing", zap.String("category", string(model.CategoryAnime)), zap.Int("products", len(products)))
	if len(products) == 0 {
		return nil
	}

	p := products[0]
	logger.Info("product",
		zap.String("name", p.Name),
		zap.String("price", money.Format(p.Price)),
		zap.Int("discount_pct", p.Discount()),
	)
	custom, err := s.Customize(ctx, "PAPERID", "", nil)
	if err != nil {
		return err
	}
	if !p.IsCustomizable {
		custom = nil
	}
	if _, err := s.AddToCart(ctx, p.ID, p.Sizes[0], "", 2, custom); err != nil {
		return err
	}
	if _, err := s.Wishlist.Toggle(p.ID); err != nil {
		return err
	}
	logger.Info("cart ready",
		zap.Int("items", s.Cart.TotalItems()),
		zap.String("total", money.Format(s.Cart.TotalPrice())),
	)

	user, err := s.Login(ctx, "user@paperid.in")
	if err != nil {
		return err
	}
	payments := s.Account.Payments()
	labels := make([]string, len(payments))
	for i, pm := range payments {
		labels[i] = pm.Display()
	}
	logger.Info("signed in",
		zap.String("name", user.Name),
		zap.Int("addresses", len(s.Account.Addresses())),
		zap.Strings("payments", labels),
	)

	order, err := s.PlaceOrder(ctx)
	if err != nil {
		return err
	}
	logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("tracking", order.TrackingNumber),
		zap.String("total", money.Format(order.Total)),
	)

	info, err := s.Track(ctx, order.TrackingNumber)
	if err != nil {
		return err
	}
	logger.Info("tracking",
		zap.String("status", string(info.Status)),
		zap.String("location", info.Location),
		zap.String("eta", info.EstimatedArrival),
	)

	s.Logout(ctx)
	return nil
}
