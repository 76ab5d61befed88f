package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/account"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	mock "github.com/vetrivel962969-dotcom/Paperid/internal/mock/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/mock/gomock"
)

var (
	home = model.Address{ID: "a-1", Title: "Home", Street: "12 Marine Drive", City: "Mumbai", Country: "India", Primary: true}
	upi  = model.PaymentMethod{ID: "p-1", Kind: model.PaymentUPI, UPI: &model.UPI{Handle: "asha@okaxis", Provider: "GPay"}}
)

func newBook(t *testing.T) (*account.Book, *mock.MockGateway) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	return account.NewBook(gw), gw
}

func TestBook_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("loads_both", func(t *testing.T) {
		b, gw := newBook(t)
		gw.EXPECT().ListAddresses(gomock.Any()).Return([]model.Address{home}, nil)
		gw.EXPECT().ListPayments(gomock.Any()).Return([]model.PaymentMethod{upi}, nil)

		require.NoError(t, b.Refresh(ctx))
		assert.True(t, b.Loaded())
		assert.Equal(t, []model.Address{home}, b.Addresses())
		assert.Equal(t, []model.PaymentMethod{upi}, b.Payments())
	})

	t.Run("one_failure_applies_nothing", func(t *testing.T) {
		b, gw := newBook(t)
		gw.EXPECT().ListAddresses(gomock.Any()).Return([]model.Address{home}, nil)
		gw.EXPECT().ListPayments(gomock.Any()).Return(nil, &gateway.Error{Op: "ListPayments", Err: gateway.ErrRemote})

		err := b.Refresh(ctx)
		assert.ErrorIs(t, err, gateway.ErrRemote)
		assert.False(t, b.Loaded())
		assert.Empty(t, b.Addresses())
	})
}

func TestBook_Addresses(t *testing.T) {
	ctx := context.Background()
	b, gw := newBook(t)

	gw.EXPECT().AddAddress(gomock.Any(), gomock.Any()).Return(home, nil)
	created, err := b.AddAddress(ctx, model.Address{Title: "Home"})
	require.NoError(t, err)
	assert.Equal(t, home.ID, created.ID)
	require.Len(t, b.Addresses(), 1)

	t.Run("failed_remove_keeps_address", func(t *testing.T) {
		gw.EXPECT().RemoveAddress(gomock.Any(), home.ID).Return(&gateway.Error{Op: "RemoveAddress", Err: gateway.ErrTimeout})
		require.Error(t, b.RemoveAddress(ctx, home.ID))
		assert.Len(t, b.Addresses(), 1)
	})

	t.Run("remove", func(t *testing.T) {
		gw.EXPECT().RemoveAddress(gomock.Any(), home.ID).Return(nil)
		require.NoError(t, b.RemoveAddress(ctx, home.ID))
		assert.Empty(t, b.Addresses())
	})
}

func TestBook_Payments(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects_mismatched_variant_locally", func(t *testing.T) {
		b, _ := newBook(t)
		_, err := b.AddPayment(ctx, model.PaymentMethod{Kind: model.PaymentCard, UPI: upi.UPI})
		assert.ErrorIs(t, err, model.ErrInvalidPaymentVariant)
	})

	t.Run("add_and_remove", func(t *testing.T) {
		b, gw := newBook(t)
		gw.EXPECT().AddPayment(gomock.Any(), gomock.Any()).Return(upi, nil)
		gw.EXPECT().RemovePayment(gomock.Any(), upi.ID).Return(nil)

		_, err := b.AddPayment(ctx, model.NewUPIPayment("asha@okaxis", "GPay"))
		require.NoError(t, err)

		got := b.Payments()
		require.Len(t, got, 1)
		got[0].UPI.Handle = "changed@upi"
		assert.Equal(t, "asha@okaxis", b.Payments()[0].UPI.Handle)

		require.NoError(t, b.RemovePayment(ctx, upi.ID))
		assert.Empty(t, b.Payments())
	})

	t.Run("reset", func(t *testing.T) {
		b, gw := newBook(t)
		gw.EXPECT().ListAddresses(gomock.Any()).Return([]model.Address{home}, nil)
		gw.EXPECT().ListPayments(gomock.Any()).Return([]model.PaymentMethod{upi}, nil)
		require.NoError(t, b.Refresh(ctx))

		b.Reset()
		assert.False(t, b.Loaded())
		assert.Empty(t, b.Payments())
	})
}
