// Package storefront is the application root. It owns one instance of every
// client store and wires them to a single Gateway.
package storefront

import (
	"context"
	"strings"

	"github.com/vetrivel962969-dotcom/Paperid/internal/account"
	"github.com/vetrivel962969-dotcom/Paperid/internal/cart"
	"github.com/vetrivel962969-dotcom/Paperid/internal/checkout"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/ledger"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/session"
	"github.com/vetrivel962969-dotcom/Paperid/internal/wishlist"
	"go.uber.org/zap"
)

type App struct {
	Gateway  gateway.Gateway
	Session  *session.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Ledger   *ledger.Ledger
	Account  *account.Book
	Checkout *checkout.Service

	logger *zap.Logger
}

type Option func(*App)

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

func New(gw gateway.Gateway, opts ...Option) *App {
	if gw == nil {
		panic("gateway cannot be nil")
	}
	a := &App{Gateway: gw, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}

	a.Session = session.NewStore(gw, a.logger)
	a.Cart = cart.NewStore(a.logger)
	a.Wishlist = wishlist.NewStore()
	a.Ledger = ledger.New()
	a.Account = account.NewBook(gw, a.logger)
	a.Checkout = checkout.NewService(checkout.Deps{
		Gateway: gw,
		Cart:    a.Cart,
		Ledger:  a.Ledger,
		Logger:  a.logger,
	})
	a.logger = a.logger.Named("storefront")
	return a
}

// Start restores the session and, when someone is signed in, loads their
// account book.
func (a *App) Start(ctx context.Context) error {
	if err := a.Session.Restore(ctx); err != nil {
		return err
	}
	if !a.Session.Authenticated() {
		return nil
	}
	return a.Account.Refresh(ctx)
}

// Login signs in and loads the account book. A failed account load does not
// undo the login.
func (a *App) Login(ctx context.Context, email string) (model.User, error) {
	user, err := a.Session.Login(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if err := a.Account.Refresh(ctx); err != nil {
		a.logger.Warn("account load after login failed", zap.Error(err))
	}
	return user, nil
}

func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Account.Reset()
}

func (a *App) Products(ctx context.Context, category model.Category) ([]model.Product, error) {
	return a.Gateway.ListProducts(ctx, &model.ProductFilter{Category: category})
}

// AddToCart is the product page flow: look the product up, check the
// selection against what it offers and add one cart line. An empty color
// picks the product's first color.
func (a *App) AddToCart(ctx context.Context, productID, size, color string, quantity int, custom *model.Customization) (model.CartItem, error) {
	p, ok, err := a.Gateway.GetProduct(ctx, productID)
	if err != nil {
		return model.CartItem{}, err
	}
	if !ok {
		return model.CartItem{}, ErrProductNotFound
	}

	size = strings.TrimSpace(size)
	if size == "" {
		return model.CartItem{}, cart.ErrSizeRequired
	}
	if !p.HasSize(size) {
		return model.CartItem{}, ErrSizeNotOffered
	}
	if color != "" && !p.HasColor(color) {
		return model.CartItem{}, ErrColorNotOffered
	}
	if custom != nil && !p.IsCustomizable {
		return model.CartItem{}, ErrNotCustomizable
	}

	item := model.NewCartItem(p, size, color, quantity)
	item.Customization = custom.Clone()
	if err := a.Cart.AddItem(item); err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// Customize uploads artwork and returns a customization that uses it.
func (a *App) Customize(ctx context.Context, text, filename string, image []byte) (*model.Customization, error) {
	c := &model.Customization{Text: text}
	if len(image) == 0 {
		return c, nil
	}
	art, err := a.Gateway.UploadArtwork(ctx, filename, image)
	if err != nil {
		return nil, err
	}
	c.Image = art.URL
	return c, nil
}

func (a *App) PlaceOrder(ctx context.Context) (model.Order, error) {
	return a.Checkout.PlaceOrder(ctx)
}

func (a *App) Track(ctx context.Context, ref string) (model.TrackingInfo, error) {
	return a.Gateway.TrackOrder(ctx, strings.TrimSpace(ref))
}
