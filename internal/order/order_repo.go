package order

import (
	"context"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, userID string, o model.Order) error
	GetByID(ctx context.Context, id string) (model.Order, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error)
}

type record struct {
	userID string
	order  model.Order
}

type memoryRepository struct {
	mu         sync.RWMutex
	orders     map[string]*record
	byTracking map[string]string
	order      []string
}

func NewRepository() Repository {
	return &memoryRepository{
		orders:     make(map[string]*record),
		byTracking: make(map[string]string),
	}
}

func (r *memoryRepository) Create(ctx context.Context, userID string, o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return ErrDuplicateOrderID
	}
	r.orders[o.ID] = &record{userID: userID, order: o.Clone()}
	r.byTracking[o.TrackingNumber] = o.ID
	r.order = append(r.order, o.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.orders[id]
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return rec.order.Clone(), nil
}

func (r *memoryRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (model.Order, error) {
	r.mu.RLock()
	id, ok := r.byTracking[trackingNumber]
	r.mu.RUnlock()
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return r.GetByID(ctx, id)
}

// ListByUser returns the user's orders newest first.
func (r *memoryRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Order{}
	for i := len(r.order) - 1; i >= 0; i-- {
		rec := r.orders[r.order[i]]
		if rec.userID == userID {
			out = append(out, rec.order.Clone())
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.orders[id]
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	rec.order.Status = status
	return rec.order.Clone(), nil
}
