// Package account keeps the signed-in user's saved addresses and payment
// methods.
package account

import (
	"context"
	"slices"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Book struct {
	gw     gateway.Gateway
	logger *zap.Logger

	mu        sync.RWMutex
	addresses []model.Address
	payments  []model.PaymentMethod
	loaded    bool
}

func NewBook(gw gateway.Gateway, logger ...*zap.Logger) *Book {
	if gw == nil {
		panic("gateway cannot be nil")
	}
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.book")
	}
	return &Book{gw: gw, logger: l}
}

// Refresh loads addresses and payments together. Nothing is applied unless
// both calls succeed.
func (b *Book) Refresh(ctx context.Context) error {
	var (
		addresses []model.Address
		payments  []model.PaymentMethod
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		addresses, err = b.gw.ListAddresses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = b.gw.ListPayments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		b.logger.Warn("account refresh failed", zap.Error(err))
		return err
	}

	b.mu.Lock()
	b.addresses = addresses
	b.payments = payments
	b.loaded = true
	b.mu.Unlock()
	return nil
}

func (b *Book) AddAddress(ctx context.Context, addr model.Address) (model.Address, error) {
	created, err := b.gw.AddAddress(ctx, addr)
	if err != nil {
		return model.Address{}, err
	}
	b.mu.Lock()
	b.addresses = append(b.addresses, created)
	b.mu.Unlock()
	return created, nil
}

func (b *Book) RemoveAddress(ctx context.Context, id string) error {
	if err := b.gw.RemoveAddress(ctx, id); err != nil {
		return err
	}
	b.mu.Lock()
	b.addresses = slices.DeleteFunc(b.addresses, func(a model.Address) bool { return a.ID == id })
	b.mu.Unlock()
	return nil
}

func (b *Book) AddPayment(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	if err := pm.Validate(); err != nil {
		return model.PaymentMethod{}, err
	}
	created, err := b.gw.AddPayment(ctx, pm)
	if err != nil {
		return model.PaymentMethod{}, err
	}
	b.mu.Lock()
	b.payments = append(b.payments, created.Clone())
	b.mu.Unlock()
	return created, nil
}

func (b *Book) RemovePayment(ctx context.Context, id string) error {
	if err := b.gw.RemovePayment(ctx, id); err != nil {
		return err
	}
	b.mu.Lock()
	b.payments = slices.DeleteFunc(b.payments, func(p model.PaymentMethod) bool { return p.ID == id })
	b.mu.Unlock()
	return nil
}

func (b *Book) Addresses() []model.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.addresses)
}

func (b *Book) Payments() []model.PaymentMethod {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.PaymentMethod, len(b.payments))
	for i, p := range b.payments {
		out[i] = p.Clone()
	}
	return out
}

// Loaded reports whether a Refresh has succeeded.
func (b *Book) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// Reset forgets everything, e.g. after logout.
func (b *Book) Reset() {
	b.mu.Lock()
	b.addresses, b.payments, b.loaded = nil, nil, false
	b.mu.Unlock()
}
