package storefront_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/app"
	"github.com/vetrivel962969-dotcom/Paperid/internal/cart"
	"github.com/vetrivel962969-dotcom/Paperid/internal/catalog"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	mock "github.com/vetrivel962969-dotcom/Paperid/internal/mock/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/storefront"
	"go.uber.org/mock/gomock"
)

func mockGateway() gateway.Gateway {
	b := app.NewBackend(app.BackendDeps{
		Catalog:   catalog.Default(),
		JWTSecret: "storefront-test",
		TokenTTL:  time.Hour,
	})
	return gateway.NewMock(gateway.MockDeps{
		Catalog:   b.Catalog,
		Auth:      b.Auth,
		Customers: b.Customers,
		Addresses: b.Addresses,
		Payments:  b.Payments,
		Orders:    b.Orders,
		Artwork:   b.Artwork,
		Delay:     -1,
	})
}

func TestApp_ShoppingFlow(t *testing.T) {
	ctx := context.Background()
	a := storefront.New(mockGateway())

	require.NoError(t, a.Start(ctx))
	assert.False(t, a.Session.Loading())
	assert.False(t, a.Session.Authenticated())

	_, err := a.AddToCart(ctx, "1", "M", "", 1, nil)
	require.NoError(t, err)
	_, err = a.AddToCart(ctx, "1", "M", "Black", 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Cart.Len())
	assert.Equal(t, 2, a.Cart.TotalItems())
	assert.Equal(t, int64(1998), a.Cart.TotalPrice())

	user, err := a.Login(ctx, "user@paperid.in")
	require.NoError(t, err)
	assert.Equal(t, "Paperid User", user.Name)
	assert.True(t, a.Account.Loaded())
	assert.NotEmpty(t, a.Account.Addresses())

	order, err := a.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1998), order.Total)
	assert.Zero(t, a.Cart.Len())

	orders := a.Ledger.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	info, err := a.Track(ctx, " "+order.TrackingNumber+" ")
	require.NoError(t, err)
	assert.Equal(t, order.ID, info.OrderID)
	assert.Equal(t, model.OrderProcessing, info.Status)

	a.Logout(ctx)
	assert.False(t, a.Session.Authenticated())
	assert.False(t, a.Account.Loaded())
}

func TestApp_AddToCart(t *testing.T) {
	ctx := context.Background()
	a := storefront.New(mockGateway())

	tests := []struct {
		name      string
		productID string
		size      string
		color     string
		custom    *model.Customization
		wantErr   error
	}{
		{name: "unknown_product", productID: "404", size: "M", wantErr: storefront.ErrProductNotFound},
		{name: "missing_size", productID: "1", size: " ", wantErr: cart.ErrSizeRequired},
		{name: "size_not_offered", productID: "2", size: "S", wantErr: storefront.ErrSizeNotOffered},
		{name: "color_not_offered", productID: "1", size: "M", color: "Neon", wantErr: storefront.ErrColorNotOffered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.AddToCart(ctx, tt.productID, tt.size, tt.color, 1, tt.custom)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, a.Cart.Len())
		})
	}

	t.Run("default_color_and_customization", func(t *testing.T) {
		custom := &model.Customization{Text: "SENSEI"}
		item, err := a.AddToCart(ctx, "1", "L", "", 1, custom)
		require.NoError(t, err)
		assert.Equal(t, "Black", item.Color)
		assert.Equal(t, "1-L-Black", item.ID)

		custom.Text = "changed"
		stored, ok := a.Cart.Item("1-L-Black")
		require.True(t, ok)
		assert.Equal(t, "SENSEI", stored.Customization.Text)
	})
}

func TestApp_Customize(t *testing.T) {
	ctx := context.Background()

	t.Run("text_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		a := storefront.New(mock.NewMockGateway(ctrl))

		c, err := a.Customize(ctx, "HELLO", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "HELLO", c.Text)
		assert.Empty(t, c.Image)
	})

	t.Run("uploads_image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockGateway(ctrl)
		gw.EXPECT().
			UploadArtwork(gomock.Any(), "logo.png", []byte("png")).
			Return(model.Artwork{URL: "https://res.cloudinary.com/paperid/image/upload/logo.png"}, nil)

		a := storefront.New(gw)
		c, err := a.Customize(ctx, "", "logo.png", []byte("png"))
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/paperid/image/upload/logo.png", c.Image)
	})
}

func TestApp_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("restore_failure_is_surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockGateway(ctrl)
		gw.EXPECT().GetProfile(gomock.Any()).Return(model.User{}, &gateway.Error{Op: "GetProfile", Err: gateway.ErrTimeout})

		a := storefront.New(gw)
		err := a.Start(ctx)
		assert.True(t, gateway.IsTimeout(err))
		assert.False(t, a.Session.Loading())
	})

	t.Run("signed_in_loads_account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockGateway(ctrl)
		gw.EXPECT().GetProfile(gomock.Any()).Return(model.User{ID: "u-1"}, nil)
		gw.EXPECT().ListAddresses(gomock.Any()).Return([]model.Address{}, nil)
		gw.EXPECT().ListPayments(gomock.Any()).Return([]model.PaymentMethod{}, nil)

		a := storefront.New(gw)
		require.NoError(t, a.Start(ctx))
		assert.True(t, a.Account.Loaded())
	})
}
