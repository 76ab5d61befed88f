// Package gateway is the storefront's single boundary to the backend. Stores
// call a Gateway and apply the returned data through their own mutations;
// a Gateway never touches store state.
//
// Every call blocks until the backend answers or ctx ends. Failures are
// *Error values so callers can tell them apart from success and from each
// other (IsAuthError, IsNotAuthenticated, IsTimeout).
package gateway

import (
	"context"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

//go:generate mockgen -source=gateway.go -destination=../mock/gateway/gateway_mock.go -package=mock
type Gateway interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error)
	// GetProduct reports a missing id as ok == false with a nil error.
	GetProduct(ctx context.Context, id string) (model.Product, bool, error)
	ListCategories(ctx context.Context) ([]model.CategoryInfo, error)

	Login(ctx context.Context, email string) (model.User, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error)

	ListAddresses(ctx context.Context) ([]model.Address, error)
	AddAddress(ctx context.Context, addr model.Address) (model.Address, error)
	RemoveAddress(ctx context.Context, id string) error
	ListPayments(ctx context.Context) ([]model.PaymentMethod, error)
	AddPayment(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error)
	RemovePayment(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, items []model.CartItem) (model.OrderReceipt, error)
	TrackOrder(ctx context.Context, ref string) (model.TrackingInfo, error)
	UploadArtwork(ctx context.Context, filename string, data []byte) (model.Artwork, error)
}

type idempotencyKey struct{}

// WithIdempotencyKey attaches the key CreateOrder sends with the order.
// Retrying a submission with the same key cannot place it twice.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKey{}, key)
}

// IdempotencyKey returns the key attached by WithIdempotencyKey.
func IdempotencyKey(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKey{}).(string)
	return key, ok && key != ""
}
