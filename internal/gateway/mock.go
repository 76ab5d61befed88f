package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/vetrivel962969-dotcom/Paperid/internal/address"
	"github.com/vetrivel962969-dotcom/Paperid/internal/artwork"
	"github.com/vetrivel962969-dotcom/Paperid/internal/auth"
	"github.com/vetrivel962969-dotcom/Paperid/internal/catalog"
	"github.com/vetrivel962969-dotcom/Paperid/internal/customer"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/order"
	"github.com/vetrivel962969-dotcom/Paperid/internal/payment"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"go.uber.org/zap"
)

const DefaultDelay = 600 * time.Millisecond

type MockDeps struct {
	Catalog   catalog.Catalog
	Auth      *auth.Service
	Customers customer.Service
	Addresses address.Service
	Payments  payment.Service
	Orders    order.Service
	Artwork   artwork.Service
	// Delay is the simulated latency of every call. Zero means
	// DefaultDelay; use a negative value for none.
	Delay  time.Duration
	Logger *zap.Logger
}

// Mock answers in-process after a fixed delay. It keeps the logged-in user
// the way a browser keeps a session cookie.
type Mock struct {
	deps   MockDeps
	delay  time.Duration
	logger *zap.Logger

	mu     sync.RWMutex
	userID string
	// orderKeys holds the idempotency keys of placed orders.
	orderKeys map[string]struct{}
}

var _ Gateway = (*Mock)(nil)

func NewMock(deps MockDeps) *Mock {
	if deps.Catalog == nil {
		panic("catalog cannot be nil")
	}
	if deps.Auth == nil || deps.Customers == nil || deps.Addresses == nil ||
		deps.Payments == nil || deps.Orders == nil || deps.Artwork == nil {
		panic("mock gateway needs every backend service")
	}
	delay := deps.Delay
	switch {
	case delay == 0:
		delay = DefaultDelay
	case delay < 0:
		delay = 0
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mock{
		deps:      deps,
		delay:     delay,
		logger:    logger.Named("gateway.mock"),
		orderKeys: make(map[string]struct{}),
	}
}

// wait simulates the round trip. The call is abandoned if ctx ends first.
func (m *Mock) wait(ctx context.Context, op string) error {
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return contextError(op, ctx.Err())
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return contextError(op, err)
	}
	m.logger.Debug("call", zap.String("op", op))
	return nil
}

func (m *Mock) currentUser() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.userID
}

// session returns the logged-in user id or the same 401 the HTTP backend
// would send.
func (m *Mock) session(op string) (string, error) {
	if id := m.currentUser(); id != "" {
		return id, nil
	}
	return "", classify(op, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized access")
}

func (m *Mock) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error) {
	if err := m.wait(ctx, opListProducts); err != nil {
		return nil, err
	}
	return m.deps.Catalog.ListProducts(filter), nil
}

func (m *Mock) GetProduct(ctx context.Context, id string) (model.Product, bool, error) {
	if err := m.wait(ctx, opGetProduct); err != nil {
		return model.Product{}, false, err
	}
	p, ok := m.deps.Catalog.GetProduct(id)
	return p, ok, nil
}

func (m *Mock) ListCategories(ctx context.Context) ([]model.CategoryInfo, error) {
	if err := m.wait(ctx, opListCategories); err != nil {
		return nil, err
	}
	return m.deps.Catalog.ListCategories(), nil
}

func (m *Mock) Login(ctx context.Context, email string) (model.User, error) {
	if err := m.wait(ctx, opLogin); err != nil {
		return model.User{}, err
	}
	_, user, err := m.deps.Auth.Login(ctx, email)
	if err != nil {
		return model.User{}, fromService(opLogin, err)
	}

	m.mu.Lock()
	m.userID = user.ID
	m.mu.Unlock()
	return user, nil
}

func (m *Mock) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.userID = ""
	m.mu.Unlock()
	return m.wait(ctx, opLogout)
}

func (m *Mock) GetProfile(ctx context.Context) (model.User, error) {
	if err := m.wait(ctx, opGetProfile); err != nil {
		return model.User{}, err
	}
	id, err := m.session(opGetProfile)
	if err != nil {
		return model.User{}, err
	}
	u, err := m.deps.Customers.GetProfile(ctx, id)
	return u, fromService(opGetProfile, err)
}

func (m *Mock) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error) {
	if err := m.wait(ctx, opUpdateProfile); err != nil {
		return model.User{}, err
	}
	id, err := m.session(opUpdateProfile)
	if err != nil {
		return model.User{}, err
	}
	u, err := m.deps.Customers.UpdateProfile(ctx, id, update)
	return u, fromService(opUpdateProfile, err)
}

func (m *Mock) ListAddresses(ctx context.Context) ([]model.Address, error) {
	if err := m.wait(ctx, opListAddresses); err != nil {
		return nil, err
	}
	id, err := m.session(opListAddresses)
	if err != nil {
		return nil, err
	}
	out, err := m.deps.Addresses.List(ctx, id)
	return out, fromService(opListAddresses, err)
}

func (m *Mock) AddAddress(ctx context.Context, addr model.Address) (model.Address, error) {
	if err := m.wait(ctx, opAddAddress); err != nil {
		return model.Address{}, err
	}
	id, err := m.session(opAddAddress)
	if err != nil {
		return model.Address{}, err
	}
	out, err := m.deps.Addresses.Create(ctx, id, addr)
	return out, fromService(opAddAddress, err)
}

func (m *Mock) RemoveAddress(ctx context.Context, addressID string) error {
	if err := m.wait(ctx, opRemoveAddress); err != nil {
		return err
	}
	id, err := m.session(opRemoveAddress)
	if err != nil {
		return err
	}
	return fromService(opRemoveAddress, m.deps.Addresses.Delete(ctx, id, addressID))
}

func (m *Mock) ListPayments(ctx context.Context) ([]model.PaymentMethod, error) {
	if err := m.wait(ctx, opListPayments); err != nil {
		return nil, err
	}
	id, err := m.session(opListPayments)
	if err != nil {
		return nil, err
	}
	out, err := m.deps.Payments.List(ctx, id)
	return out, fromService(opListPayments, err)
}

func (m *Mock) AddPayment(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	if err := m.wait(ctx, opAddPayment); err != nil {
		return model.PaymentMethod{}, err
	}
	id, err := m.session(opAddPayment)
	if err != nil {
		return model.PaymentMethod{}, err
	}
	out, err := m.deps.Payments.Create(ctx, id, pm)
	return out, fromService(opAddPayment, err)
}

func (m *Mock) RemovePayment(ctx context.Context, paymentID string) error {
	if err := m.wait(ctx, opRemovePayment); err != nil {
		return err
	}
	id, err := m.session(opRemovePayment)
	if err != nil {
		return err
	}
	return fromService(opRemovePayment, m.deps.Payments.Delete(ctx, id, paymentID))
}

// CreateOrder works for guests too; the order is then not linked to a user.
// A key attached with WithIdempotencyKey is rejected once its order exists,
// the same way the HTTP backend answers a replay.
func (m *Mock) CreateOrder(ctx context.Context, items []model.CartItem) (model.OrderReceipt, error) {
	if err := m.wait(ctx, opCreateOrder); err != nil {
		return model.OrderReceipt{}, err
	}
	userID := m.currentUser()
	key, keyed := IdempotencyKey(ctx)
	if !keyed {
		r, err := m.deps.Orders.Create(ctx, userID, items)
		return r, fromService(opCreateOrder, err)
	}

	// The lock is held across Create so two calls with one key place once.
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, seen := m.orderKeys[key]; seen {
		return model.OrderReceipt{}, classify(opCreateOrder, http.StatusConflict, apperror.CodeConflict, "Duplicate request")
	}
	r, err := m.deps.Orders.Create(ctx, userID, items)
	if err != nil {
		return r, fromService(opCreateOrder, err)
	}
	m.orderKeys[key] = struct{}{}
	return r, nil
}

func (m *Mock) TrackOrder(ctx context.Context, ref string) (model.TrackingInfo, error) {
	if err := m.wait(ctx, opTrackOrder); err != nil {
		return model.TrackingInfo{}, err
	}
	info, err := m.deps.Orders.Track(ctx, ref)
	return info, fromService(opTrackOrder, err)
}

func (m *Mock) UploadArtwork(ctx context.Context, filename string, data []byte) (model.Artwork, error) {
	if err := m.wait(ctx, opUploadArtwork); err != nil {
		return model.Artwork{}, err
	}
	a, err := m.deps.Artwork.Upload(ctx, m.currentUser(), filename, data)
	return a, fromService(opUploadArtwork, err)
}
