package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/outbox"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/money"
	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, items []model.CartItem) (model.OrderReceipt, error)
	Detail(ctx context.Context, orderID string) (model.Order, error)
	List(ctx context.Context, userID string) ([]model.Order, error)
	Track(ctx context.Context, ref string) (model.TrackingInfo, error)
	UpdateStatus(ctx context.Context, orderID string, next model.OrderStatus) (model.Order, error)
	Invoice(ctx context.Context, orderID string) ([]byte, error)
}

type service struct {
	repo       Repository
	outboxRepo outbox.Repository
	sequencer  Sequencer
	validate   *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

type Deps struct {
	Repo       Repository
	OutboxRepo outbox.Repository
	Sequencer  Sequencer
	Logger     *zap.Logger
	Now        func() time.Time
}

const maxIDAttempts = 5

var statusTransitions = map[model.OrderStatus]map[model.OrderStatus]struct{}{
	model.OrderProcessing: {
		model.OrderShipped:   {},
		model.OrderCancelled: {},
	},
	model.OrderShipped: {
		model.OrderDelivered: {},
	},
	model.OrderDelivered: {},
	model.OrderCancelled: {},
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Sequencer == nil {
		deps.Sequencer = RandomSequencer{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &service{
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		sequencer:  deps.Sequencer,
		validate:   validator.New(),
		logger:     deps.Logger,
		now:        deps.Now,
	}
}

// Create stores a Processing order built from items and queues an
// ORDER_PLACED event. userID is empty for guest checkout.
func (s *service) Create(ctx context.Context, userID string, items []model.CartItem) (model.OrderReceipt, error) {
	logger := s.logger.With(zap.String("user_id", userID))

	if len(items) == 0 {
		return model.OrderReceipt{}, ErrCartEmpty
	}
	lines := make([]money.Line, 0, len(items))
	for _, it := range items {
		if err := s.validate.Struct(it); err != nil {
			logger.Warn("rejected order item", zap.String("product_id", it.ProductID), zap.Error(err))
			return model.OrderReceipt{}, apperror.Wrap(ErrInvalidItems, err)
		}
		lines = append(lines, money.Line{Price: it.Price, Quantity: it.Quantity})
	}

	placedAt := s.now()
	o := model.Order{
		Date:           model.FormatOrderDate(placedAt),
		Status:         model.OrderProcessing,
		Total:          money.Sum(lines...),
		Items:          model.CloneItems(items),
		TrackingNumber: newTrackingNumber(),
		PlacedAt:       placedAt,
	}

	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		o.ID, err = s.sequencer.NextID(ctx)
		if err != nil {
			logger.Error("failed to allocate order id", zap.Error(err))
			return model.OrderReceipt{}, apperror.Wrap(ErrOrderFailed, err)
		}
		err = s.repo.Create(ctx, userID, o)
		if !errors.Is(err, ErrDuplicateOrderID) {
			break
		}
		logger.Debug("order id collision, retrying", zap.String("order_id", o.ID))
	}
	if err != nil {
		logger.Error("failed to store order", zap.Error(err))
		return model.OrderReceipt{}, apperror.Wrap(ErrOrderFailed, err)
	}
	logger = logger.With(zap.String("order_id", o.ID))

	s.recordPlaced(ctx, userID, o, logger)

	logger.Info("order placed", zap.Int64("total", o.Total))

	return model.OrderReceipt{
		OrderID:        o.ID,
		TrackingNumber: o.TrackingNumber,
		PlacedAt:       placedAt,
	}, nil
}

// recordPlaced queues the order placed event. The order is already stored,
// so a failure here is logged and does not fail the checkout.
func (s *service) recordPlaced(ctx context.Context, userID string, o model.Order, logger *zap.Logger) {
	payload, err := json.Marshal(OrderPlacedPayload{
		OrderID:        o.ID,
		UserID:         userID,
		Total:          o.Total,
		ItemCount:      len(o.Items),
		TrackingNumber: o.TrackingNumber,
	})
	if err != nil {
		logger.Error("failed to encode order placed event", zap.Error(err))
		return
	}
	if err := s.outboxRepo.CreateOutboxEvent(ctx, outbox.Event{
		ID:            uuid.New(),
		AggregateType: AggregateType,
		AggregateID:   o.ID,
		EventType:     EventOrderPlaced,
		Payload:       payload,
	}); err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
	}
}

func (s *service) Detail(ctx context.Context, orderID string) (model.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) List(ctx context.Context, userID string) ([]model.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Track resolves ref as an order id first, then as a tracking number.
func (s *service) Track(ctx context.Context, ref string) (model.TrackingInfo, error) {
	o, err := s.repo.GetByID(ctx, ref)
	if errors.Is(err, ErrOrderNotFound) {
		o, err = s.repo.GetByTrackingNumber(ctx, ref)
	}
	if err != nil {
		return model.TrackingInfo{}, err
	}

	return model.TrackingInfo{
		OrderID:          o.ID,
		TrackingNumber:   o.TrackingNumber,
		Status:           o.Status,
		Location:         locationFor(o.Status),
		EstimatedArrival: o.PlacedAt.AddDate(0, 0, deliveryDays).Format("2 Jan"),
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, next model.OrderStatus) (model.Order, error) {
	if !next.Valid() {
		return model.Order{}, ErrInvalidStatus
	}
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if _, ok := statusTransitions[o.Status][next]; !ok {
		s.logger.Warn("rejected status transition",
			zap.String("order_id", orderID),
			zap.String("from", string(o.Status)),
			zap.String("to", string(next)),
		)
		return model.Order{}, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, next)
	if err != nil {
		return model.Order{}, err
	}
	s.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(next)),
	)
	return updated, nil
}

func (s *service) Invoice(ctx context.Context, orderID string) ([]byte, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	pdf, err := renderInvoice(o)
	if err != nil {
		s.logger.Error("failed to render invoice", zap.String("order_id", orderID), zap.Error(err))
		return nil, apperror.Wrap(ErrInvoiceFailed, err)
	}
	return pdf, nil
}

const deliveryDays = 5

func locationFor(status model.OrderStatus) string {
	switch status {
	case model.OrderProcessing:
		return "Paperid Studio, Mumbai"
	case model.OrderShipped:
		return "Bengaluru Distribution Hub"
	case model.OrderDelivered:
		return "Delivered"
	default:
		return "Returned to sender"
	}
}
