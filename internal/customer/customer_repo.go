package customer

import (
	"context"
	"strings"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

//go:generate mockgen -source=customer_repo.go -destination=../mock/customer/customer_repo_mock.go -package=mock
type Repository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
}

// SeedUser is the demo account present in every fresh repository.
var SeedUser = model.User{
	ID:    "1",
	Name:  "Paperid User",
	Email: "user@paperid.in",
	Phone: "+91 9876543210",
}

type memoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string
}

// NewRepository returns an in-memory user store holding SeedUser.
func NewRepository() Repository {
	r := &memoryRepository{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
	}
	r.put(SeedUser)
	return r
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *memoryRepository) put(u model.User) {
	r.byID[u.ID] = u
	r.byEmail[normalizeEmail(u.Email)] = u.ID
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, ErrCustomerNotFound
	}
	return u, nil
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return model.User{}, ErrCustomerNotFound
	}
	return r.byID[id], nil
}

func (r *memoryRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[normalizeEmail(u.Email)]; ok {
		return model.User{}, ErrEmailAlreadyUsed
	}
	r.put(u)
	return u, nil
}

func (r *memoryRepository) Update(ctx context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[u.ID]
	if !ok {
		return model.User{}, ErrCustomerNotFound
	}
	u.Email = cur.Email
	r.byID[u.ID] = u
	return u, nil
}
