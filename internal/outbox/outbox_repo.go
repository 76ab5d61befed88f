// Package outbox stores domain events until a worker publishes them.
package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"

	// maxAttempts is how many failed publishes an event survives before it
	// stops being listed as pending.
	maxAttempts = 5
)

type Event struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	Status        string
	Attempts      int
	CreatedAt     time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	CreateOutboxEvent(ctx context.Context, e Event) error
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type memoryRepository struct {
	mu     sync.Mutex
	events []Event
	index  map[uuid.UUID]int
}

func NewRepository() Repository {
	return &memoryRepository{index: make(map[uuid.UUID]int)}
}

func (r *memoryRepository) CreateOutboxEvent(ctx context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.Status = StatusPending
	e.Payload = append([]byte(nil), e.Payload...)
	r.index[e.ID] = len(r.events)
	r.events = append(r.events, e)
	return nil
}

// ListPending returns up to limit unsent events, oldest first. Failed events
// are retried until they reach maxAttempts.
func (r *memoryRepository) ListPending(ctx context.Context, limit int) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0, limit)
	for _, e := range r.events {
		if len(out) == limit {
			break
		}
		if e.Status == StatusSent || e.Attempts >= maxAttempts {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memoryRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.update(id, func(e *Event) { e.Status = StatusSent })
}

func (r *memoryRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.update(id, func(e *Event) {
		e.Status = StatusFailed
		e.Attempts++
	})
}

func (r *memoryRepository) update(id uuid.UUID, fn func(*Event)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return ErrEventNotFound
	}
	fn(&r.events[i])
	return nil
}
