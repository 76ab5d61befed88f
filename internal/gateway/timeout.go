package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

// WithTimeout bounds every call on g by d. A call that outlives d fails
// with ErrTimeout even if g ignores its context.
func WithTimeout(g Gateway, d time.Duration) Gateway {
	if d <= 0 {
		return g
	}
	return &timeoutGateway{next: g, timeout: d}
}

type timeoutGateway struct {
	next    Gateway
	timeout time.Duration
}

type result[T any] struct {
	val T
	err error
}

func within[T any](parent context.Context, d time.Duration, op string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()

	done := make(chan result[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- result[T]{v, err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		if err := parent.Err(); err != nil {
			return zero, contextError(op, err)
		}
		return zero, &Error{
			Op:      op,
			Message: "timed out",
			Err:     fmt.Errorf("%w: %w", ErrTimeout, context.DeadlineExceeded),
		}
	}
}

func none(err error) (struct{}, error) { return struct{}{}, err }

func (t *timeoutGateway) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error) {
	return within(ctx, t.timeout, opListProducts, func(ctx context.Context) ([]model.Product, error) {
		return t.next.ListProducts(ctx, filter)
	})
}

func (t *timeoutGateway) GetProduct(ctx context.Context, id string) (model.Product, bool, error) {
	type found struct {
		p  model.Product
		ok bool
	}
	r, err := within(ctx, t.timeout, opGetProduct, func(ctx context.Context) (found, error) {
		p, ok, err := t.next.GetProduct(ctx, id)
		return found{p, ok}, err
	})
	return r.p, r.ok, err
}

func (t *timeoutGateway) ListCategories(ctx context.Context) ([]model.CategoryInfo, error) {
	return within(ctx, t.timeout, opListCategories, t.next.ListCategories)
}

func (t *timeoutGateway) Login(ctx context.Context, email string) (model.User, error) {
	return within(ctx, t.timeout, opLogin, func(ctx context.Context) (model.User, error) {
		return t.next.Login(ctx, email)
	})
}

func (t *timeoutGateway) Logout(ctx context.Context) error {
	_, err := within(ctx, t.timeout, opLogout, func(ctx context.Context) (struct{}, error) {
		return none(t.next.Logout(ctx))
	})
	return err
}

func (t *timeoutGateway) GetProfile(ctx context.Context) (model.User, error) {
	return within(ctx, t.timeout, opGetProfile, t.next.GetProfile)
}

func (t *timeoutGateway) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error) {
	return within(ctx, t.timeout, opUpdateProfile, func(ctx context.Context) (model.User, error) {
		return t.next.UpdateProfile(ctx, update)
	})
}

func (t *timeoutGateway) ListAddresses(ctx context.Context) ([]model.Address, error) {
	return within(ctx, t.timeout, opListAddresses, t.next.ListAddresses)
}

func (t *timeoutGateway) AddAddress(ctx context.Context, addr model.Address) (model.Address, error) {
	return within(ctx, t.timeout, opAddAddress, func(ctx context.Context) (model.Address, error) {
		return t.next.AddAddress(ctx, addr)
	})
}

func (t *timeoutGateway) RemoveAddress(ctx context.Context, id string) error {
	_, err := within(ctx, t.timeout, opRemoveAddress, func(ctx context.Context) (struct{}, error) {
		return none(t.next.RemoveAddress(ctx, id))
	})
	return err
}

func (t *timeoutGateway) ListPayments(ctx context.Context) ([]model.PaymentMethod, error) {
	return within(ctx, t.timeout, opListPayments, t.next.ListPayments)
}

func (t *timeoutGateway) AddPayment(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	return within(ctx, t.timeout, opAddPayment, func(ctx context.Context) (model.PaymentMethod, error) {
		return t.next.AddPayment(ctx, pm)
	})
}

func (t *timeoutGateway) RemovePayment(ctx context.Context, id string) error {
	_, err := within(ctx, t.timeout, opRemovePayment, func(ctx context.Context) (struct{}, error) {
		return none(t.next.RemovePayment(ctx, id))
	})
	return err
}

func (t *timeoutGateway) CreateOrder(ctx context.Context, items []model.CartItem) (model.OrderReceipt, error) {
	return within(ctx, t.timeout, opCreateOrder, func(ctx context.Context) (model.OrderReceipt, error) {
		return t.next.CreateOrder(ctx, items)
	})
}

func (t *timeoutGateway) TrackOrder(ctx context.Context, ref string) (model.TrackingInfo, error) {
	return within(ctx, t.timeout, opTrackOrder, func(ctx context.Context) (model.TrackingInfo, error) {
		return t.next.TrackOrder(ctx, ref)
	})
}

func (t *timeoutGateway) UploadArtwork(ctx context.Context, filename string, data []byte) (model.Artwork, error) {
	return within(ctx, t.timeout, opUploadArtwork, func(ctx context.Context) (model.Artwork, error) {
		return t.next.UploadArtwork(ctx, filename, data)
	})
}
