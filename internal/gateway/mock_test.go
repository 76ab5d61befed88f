package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
)

func TestMock_Delay(t *testing.T) {
	gw := newMock(newBackend(), 30*time.Millisecond)

	start := time.Now()
	_, err := gw.ListCategories(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMock_ContextEndsCall(t *testing.T) {
	gw := newMock(newBackend(), time.Hour)

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := gw.ListProducts(ctx, nil)
		require.Error(t, err)
		assert.True(t, gateway.IsTimeout(err))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gw.Login(ctx, "asha@paperid.in")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, gateway.IsTimeout(err))
	})
}

func TestMock_LogoutClearsSessionEvenIfCancelled(t *testing.T) {
	gw := newMock(newBackend(), -1)
	ctx := context.Background()

	_, err := gw.Login(ctx, "asha@paperid.in")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, gw.Logout(cancelled))

	_, err = gw.GetProfile(ctx)
	assert.True(t, gateway.IsNotAuthenticated(err))
}

func TestMock_GuestCheckout(t *testing.T) {
	b := newBackend()
	gw := newMock(b, -1)
	ctx := context.Background()

	p, ok, err := gw.GetProduct(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)

	receipt, err := gw.CreateOrder(ctx, cartOf(p))
	require.NoError(t, err)

	o, err := b.Orders.Detail(ctx, receipt.OrderID)
	require.NoError(t, err)
	assert.Equal(t, receipt.TrackingNumber, o.TrackingNumber)
}

func TestNewMock_PanicsWithoutServices(t *testing.T) {
	assert.Panics(t, func() {
		gateway.NewMock(gateway.MockDeps{})
	})
}
