package address

import (
	"context"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Address, error)
	Create(ctx context.Context, userID string, a model.Address) (model.Address, error)
	Delete(ctx context.Context, userID, id string) error
}

var seedAddresses = map[string][]model.Address{
	"1": {{
		ID:      "1",
		Title:   "Home Studio",
		Street:  "123 Minimalist Tower, Design District",
		City:    "Mumbai, Maharashtra 400001",
		Country: "India",
		Primary: true,
	}},
}

type memoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]model.Address
}

func NewRepository() Repository {
	r := &memoryRepository{byUser: make(map[string][]model.Address)}
	for uid, list := range seedAddresses {
		r.byUser[uid] = append([]model.Address(nil), list...)
	}
	return r
}

func (r *memoryRepository) ListByUser(ctx context.Context, userID string) ([]model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Address{}, r.byUser[userID]...), nil
}

// Create appends a. The first address of a user, or one marked primary,
// becomes the only primary address.
func (r *memoryRepository) Create(ctx context.Context, userID string, a model.Address) (model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byUser[userID]
	if len(list) == 0 {
		a.Primary = true
	}
	if a.Primary {
		for i := range list {
			list[i].Primary = false
		}
	}
	r.byUser[userID] = append(list, a)
	return a, nil
}

func (r *memoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byUser[userID]
	for i, a := range list {
		if a.ID != id {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if a.Primary && len(list) > 0 {
			list[0].Primary = true
		}
		r.byUser[userID] = list
		return nil
	}
	return ErrAddressNotFound
}
