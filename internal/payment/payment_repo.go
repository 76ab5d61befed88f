package payment

import (
	"context"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]model.PaymentMethod, error)
	Create(ctx context.Context, userID string, p model.PaymentMethod) (model.PaymentMethod, error)
	Delete(ctx context.Context, userID, id string) error
}

func seedPayments() map[string][]model.PaymentMethod {
	upi := model.NewUPIPayment("paperid@okaxis", "PhonePe")
	upi.ID = "1"
	card := model.NewCardPayment("4242", "Visa")
	card.ID = "2"
	return map[string][]model.PaymentMethod{"1": {upi, card}}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]model.PaymentMethod
}

func NewRepository() Repository {
	return &memoryRepository{byUser: seedPayments()}
}

func (r *memoryRepository) ListByUser(ctx context.Context, userID string) ([]model.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byUser[userID]
	out := make([]model.PaymentMethod, len(list))
	for i, p := range list {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, userID string, p model.PaymentMethod) (model.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = append(r.byUser[userID], p.Clone())
	return p, nil
}

func (r *memoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byUser[userID]
	for i, p := range list {
		if p.ID == id {
			r.byUser[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrPaymentNotFound
}
