// Package ledger records placed orders, newest first.
package ledger

import (
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

type Ledger struct {
	mu     sync.RWMutex
	orders []model.Order
}

func New() *Ledger {
	return &Ledger{}
}

// Add stores a deep copy of order at the front. Ids are not deduplicated.
func (l *Ledger) Add(order model.Order) {
	o := order.Clone()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]model.Order{o}, l.orders...)
}

func (l *Ledger) Orders() []model.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.Clone()
	}
	return out
}

func (l *Ledger) Latest() (model.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.orders) == 0 {
		return model.Order{}, false
	}
	return l.orders[0].Clone(), true
}

// Get returns the most recent order with the given id.
func (l *Ledger) Get(id string) (model.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return model.Order{}, false
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
