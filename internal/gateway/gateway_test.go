package gateway_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/app"
	"github.com/vetrivel962969-dotcom/Paperid/internal/catalog"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/zap"
)

const testSecret = "gateway-test-secret"

func newBackend() *app.Backend {
	return app.NewBackend(app.BackendDeps{
		Catalog:   catalog.Default(),
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
		Logger:    zap.NewNop(),
	})
}

func newMock(b *app.Backend, delay time.Duration) *gateway.Mock {
	return gateway.NewMock(gateway.MockDeps{
		Catalog:   b.Catalog,
		Auth:      b.Auth,
		Customers: b.Customers,
		Addresses: b.Addresses,
		Payments:  b.Payments,
		Orders:    b.Orders,
		Artwork:   b.Artwork,
		Delay:     delay,
	})
}

func newHTTPClient(t *testing.T) *gateway.HTTPClient {
	t.Helper()
	cfg := app.Config{Env: "test", JWTSecret: testSecret, TokenTTL: time.Hour}
	srv := httptest.NewServer(app.NewRouter(newBackend(), cfg, nil, zap.NewNop()))
	t.Cleanup(srv.Close)
	return gateway.NewHTTPClient(srv.URL+"/api/v1", gateway.WithHTTPClient(srv.Client()))
}

// Both gateways must behave the same way for the stores above them.
func TestGateway_Contract(t *testing.T) {
	impls := map[string]func(t *testing.T) gateway.Gateway{
		"mock": func(t *testing.T) gateway.Gateway { return newMock(newBackend(), -1) },
		"http": func(t *testing.T) gateway.Gateway { return newHTTPClient(t) },
	}

	for name, build := range impls {
		t.Run(name, func(t *testing.T) {
			runContract(t, build(t))
		})
	}
}

func runContract(t *testing.T, gw gateway.Gateway) {
	ctx := context.Background()

	t.Run("list_products", func(t *testing.T) {
		all, err := gw.ListProducts(ctx, nil)
		require.NoError(t, err)
		require.NotEmpty(t, all)

		anime, err := gw.ListProducts(ctx, &model.ProductFilter{Category: model.CategoryAnime})
		require.NoError(t, err)
		require.NotEmpty(t, anime)
		assert.Less(t, len(anime), len(all))
		for _, p := range anime {
			assert.Equal(t, model.CategoryAnime, p.Category)
		}
	})

	t.Run("get_product", func(t *testing.T) {
		p, ok, err := gw.GetProduct(ctx, "1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "1", p.ID)

		_, ok, err = gw.GetProduct(ctx, "no-such-product")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list_categories", func(t *testing.T) {
		cats, err := gw.ListCategories(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, cats)
	})

	t.Run("profile_requires_login", func(t *testing.T) {
		_, err := gw.GetProfile(ctx)
		require.Error(t, err)
		assert.True(t, gateway.IsNotAuthenticated(err))
		assert.False(t, gateway.IsAuthError(err))
	})

	t.Run("login_rejects_bad_email", func(t *testing.T) {
		_, err := gw.Login(ctx, "not-an-email")
		require.Error(t, err)
		assert.True(t, gateway.IsAuthError(err))

		var gwErr *gateway.Error
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, "Login", gwErr.Op)
	})

	t.Run("login_and_profile", func(t *testing.T) {
		user, err := gw.Login(ctx, "asha@paperid.in")
		require.NoError(t, err)
		assert.Equal(t, "asha@paperid.in", user.Email)
		assert.NotEmpty(t, user.ID)

		name := "Asha"
		updated, err := gw.UpdateProfile(ctx, model.ProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Asha", updated.Name)
		assert.Equal(t, user.Email, updated.Email)

		got, err := gw.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Asha", got.Name)
	})

	t.Run("addresses", func(t *testing.T) {
		created, err := gw.AddAddress(ctx, model.Address{
			Title:   "Home",
			Street:  "12 Marine Drive",
			City:    "Mumbai",
			Country: "India",
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		list, err := gw.ListAddresses(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, gw.RemoveAddress(ctx, created.ID))
		list, err = gw.ListAddresses(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = gw.AddAddress(ctx, model.Address{Title: "Incomplete"})
		require.Error(t, err)
		assert.ErrorIs(t, err, gateway.ErrInvalidInput)
	})

	t.Run("payments", func(t *testing.T) {
		created, err := gw.AddPayment(ctx, model.NewUPIPayment("asha@okaxis", "GPay"))
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		list, err := gw.ListPayments(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, model.PaymentUPI, list[0].Kind)

		require.NoError(t, gw.RemovePayment(ctx, created.ID))
	})

	t.Run("order_and_tracking", func(t *testing.T) {
		p, ok, err := gw.GetProduct(ctx, "1")
		require.NoError(t, err)
		require.True(t, ok)

		receipt, err := gw.CreateOrder(ctx, []model.CartItem{model.NewCartItem(p, "M", "Black", 2)})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(receipt.OrderID, "PI-"))
		assert.True(t, strings.HasPrefix(receipt.TrackingNumber, "TRK"))

		info, err := gw.TrackOrder(ctx, receipt.OrderID)
		require.NoError(t, err)
		assert.Equal(t, model.OrderProcessing, info.Status)
		assert.Equal(t, receipt.TrackingNumber, info.TrackingNumber)

		byTracking, err := gw.TrackOrder(ctx, receipt.TrackingNumber)
		require.NoError(t, err)
		assert.Equal(t, receipt.OrderID, byTracking.OrderID)
	})

	t.Run("empty_order_rejected", func(t *testing.T) {
		_, err := gw.CreateOrder(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, gateway.ErrInvalidInput)
	})

	t.Run("track_unknown_order", func(t *testing.T) {
		_, err := gw.TrackOrder(ctx, "PI-missing")
		require.Error(t, err)
		assert.True(t, gateway.IsNotFound(err))
	})

	t.Run("logout_ends_session", func(t *testing.T) {
		require.NoError(t, gw.Logout(ctx))

		_, err := gw.GetProfile(ctx)
		assert.True(t, gateway.IsNotAuthenticated(err))
	})
}
