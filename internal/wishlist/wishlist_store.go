// Package wishlist keeps the set of wishlisted product ids.
package wishlist

import (
	"sort"
	"strings"
	"sync"
)

type Store struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

func NewStore() *Store {
	return &Store{items: make(map[string]struct{})}
}

// Toggle flips membership of productID and reports whether it is now
// wishlisted.
func (s *Store) Toggle(productID string) (bool, error) {
	if strings.TrimSpace(productID) == "" {
		return false, ErrInvalidProductID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[productID]; ok {
		delete(s.items, productID)
		return false, nil
	}
	s.items[productID] = struct{}{}
	return true, nil
}

func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[productID]
	return ok
}

// Items returns the wishlisted ids sorted for stable display.
func (s *Store) Items() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
