// Package checkout turns the cart into a placed order.
package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vetrivel962969-dotcom/Paperid/internal/cart"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/ledger"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/zap"
)

type Deps struct {
	Gateway gateway.Gateway
	Cart    *cart.Store
	Ledger  *ledger.Ledger
	Logger  *zap.Logger
}

type Service struct {
	gw     gateway.Gateway
	cart   *cart.Store
	ledger *ledger.Ledger
	logger *zap.Logger

	// mu serializes PlaceOrder so a double submit cannot place the same
	// cart twice.
	mu sync.Mutex
	// pendingKey is the idempotency key of the last failed submission of
	// pendingItems. A retry of the same lines reuses it.
	pendingKey   string
	pendingItems []model.CartItem
}

func NewService(deps Deps) *Service {
	if deps.Gateway == nil {
		panic("gateway cannot be nil")
	}
	if deps.Cart == nil || deps.Ledger == nil {
		panic("cart and ledger cannot be nil")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gw:     deps.Gateway,
		cart:   deps.Cart,
		ledger: deps.Ledger,
		logger: logger.Named("checkout.service"),
	}
}

// PlaceOrder submits a snapshot of the cart. On failure the cart and the
// ledger are left as they were; on success the order is recorded and the
// ordered lines are taken out of the cart. Lines added while the order was
// in flight stay.
//
// Every submission carries an idempotency key. Retrying after a failure
// with unchanged lines sends the same key, so an order whose response was
// lost is rejected with a conflict instead of being placed again.
func (s *Service) PlaceOrder(ctx context.Context) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, total := s.cart.Snapshot()
	if len(items) == 0 {
		return model.Order{}, ErrCartEmpty
	}

	key := s.submissionKey(items)
	receipt, err := s.gw.CreateOrder(gateway.WithIdempotencyKey(ctx, key), items)
	if err != nil {
		if gateway.IsConflict(err) {
			// Already placed under this key; the next submit is a new order.
			s.resetPending()
		}
		s.logger.Warn("order placement failed",
			zap.Int("items", len(items)),
			zap.Bool("duplicate", gateway.IsConflict(err)),
			zap.Error(err),
		)
		return model.Order{}, err
	}
	s.resetPending()

	order := model.Order{
		ID:             receipt.OrderID,
		Date:           model.FormatOrderDate(receipt.PlacedAt),
		Status:         model.OrderProcessing,
		Total:          total,
		Items:          items,
		TrackingNumber: receipt.TrackingNumber,
		PlacedAt:       receipt.PlacedAt,
	}
	s.ledger.Add(order)
	s.cart.RemoveOrdered(items)

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
	)
	return order.Clone(), nil
}

// submissionKey returns the pending key when items match the failed
// submission it belongs to, and a fresh key otherwise.
func (s *Service) submissionKey(items []model.CartItem) string {
	if s.pendingKey == "" || !sameLines(s.pendingItems, items) {
		s.pendingKey = uuid.NewString()
		s.pendingItems = model.CloneItems(items)
	}
	return s.pendingKey
}

func (s *Service) resetPending() {
	s.pendingKey = ""
	s.pendingItems = nil
}

func sameLines(a, b []model.CartItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Quantity != b[i].Quantity || a[i].Price != b[i].Price {
			return false
		}
	}
	return true
}
