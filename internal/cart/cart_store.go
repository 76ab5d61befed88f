// Package cart owns the shopping cart line items.
package cart

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/money"
	"go.uber.org/zap"
)

// Store holds at most one line per variant key, in insertion order. Every
// method runs under the store lock, so readers never see a half-applied
// mutation.
type Store struct {
	mu       sync.RWMutex
	items    []model.CartItem
	validate *validator.Validate
	logger   *zap.Logger
}

func NewStore(logger ...*zap.Logger) *Store {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.store")
	}
	return &Store{
		validate: validator.New(),
		logger:   l,
	}
}

// AddItem merges item into the line with the same variant key, or appends a
// copy of it. The item ID is always recomputed from product, size and color.
func (s *Store) AddItem(item model.CartItem) error {
	if err := s.validate.Struct(item); err != nil {
		return mapValidationError(err)
	}
	line := item.Clone()
	line.ID = model.VariantKey(item.ProductID, item.Size, item.Color)

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(line.ID); i >= 0 {
		s.items[i].Quantity += line.Quantity
		s.logger.Debug("cart line merged",
			zap.String("item_id", line.ID),
			zap.Int("quantity", s.items[i].Quantity),
		)
		return nil
	}
	s.items = append(s.items, line)
	s.logger.Debug("cart line added", zap.String("item_id", line.ID))
	return nil
}

// RemoveItem deletes the line; an unknown id is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// UpdateQuantity adds delta to the line quantity, clamping at 1. Removing a
// line is always an explicit RemoveItem.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items[i].Quantity = max(1, s.items[i].Quantity+delta)
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// RemoveOrdered takes the ordered quantities off their lines and drops lines
// that reach zero. Quantity added after the snapshot was taken, and lines
// that were not part of it, stay in the cart.
func (s *Store) RemoveOrdered(ordered []model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range ordered {
		i := s.indexOf(o.ID)
		if i < 0 {
			continue
		}
		if s.items[i].Quantity > o.Quantity {
			s.items[i].Quantity -= o.Quantity
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	if len(s.items) == 0 {
		s.items = nil
	}
}

// Items returns a deep copy of the cart lines.
func (s *Store) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := model.CloneItems(s.items)
	if out == nil {
		out = []model.CartItem{}
	}
	return out
}

func (s *Store) Item(id string) (model.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.CartItem{}, false
	}
	return s.items[i].Clone(), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) TotalPrice() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalOf(s.items)
}

// Snapshot returns a copy of the lines together with their total, taken
// under a single read lock.
func (s *Store) Snapshot() ([]model.CartItem, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneItems(s.items), totalOf(s.items)
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func totalOf(items []model.CartItem) int64 {
	lines := make([]money.Line, len(items))
	for i, it := range items {
		lines[i] = money.Line{Price: it.Price, Quantity: it.Quantity}
	}
	return money.Sum(lines...)
}
