package gateway_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/app"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"go.uber.org/zap"
)

func newRedisHTTPClient(t *testing.T, b *app.Backend) *gateway.HTTPClient {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := app.Config{Env: "test", JWTSecret: testSecret, TokenTTL: time.Hour}
	srv := httptest.NewServer(app.NewRouter(b, cfg, rdb, zap.NewNop()))
	t.Cleanup(srv.Close)
	return gateway.NewHTTPClient(srv.URL+"/api/v1", gateway.WithHTTPClient(srv.Client()))
}

func TestGateway_CreateOrderReplay(t *testing.T) {
	impls := map[string]func(t *testing.T, b *app.Backend) gateway.Gateway{
		"mock": func(t *testing.T, b *app.Backend) gateway.Gateway { return newMock(b, -1) },
		"http": func(t *testing.T, b *app.Backend) gateway.Gateway { return newRedisHTTPClient(t, b) },
	}

	for name, build := range impls {
		t.Run(name, func(t *testing.T) {
			b := newBackend()
			gw := build(t, b)
			ctx := context.Background()

			user, err := gw.Login(ctx, "meera@paperid.in")
			require.NoError(t, err)
			p, ok, err := gw.GetProduct(ctx, "2")
			require.NoError(t, err)
			require.True(t, ok)

			keyed := gateway.WithIdempotencyKey(ctx, "checkout-1")
			_, err = gw.CreateOrder(keyed, cartOf(p))
			require.NoError(t, err)

			_, err = gw.CreateOrder(keyed, cartOf(p))
			require.Error(t, err)
			assert.True(t, gateway.IsConflict(err))

			orders, err := b.Orders.List(ctx, user.ID)
			require.NoError(t, err)
			assert.Len(t, orders, 1)

			_, err = gw.CreateOrder(gateway.WithIdempotencyKey(ctx, "checkout-2"), cartOf(p))
			require.NoError(t, err)
			orders, err = b.Orders.List(ctx, user.ID)
			require.NoError(t, err)
			assert.Len(t, orders, 2)
		})
	}
}

func TestIdempotencyKey(t *testing.T) {
	_, ok := gateway.IdempotencyKey(context.Background())
	assert.False(t, ok)

	_, ok = gateway.IdempotencyKey(gateway.WithIdempotencyKey(context.Background(), ""))
	assert.False(t, ok)

	key, ok := gateway.IdempotencyKey(gateway.WithIdempotencyKey(context.Background(), "k-1"))
	assert.True(t, ok)
	assert.Equal(t, "k-1", key)
}
