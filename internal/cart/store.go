package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Store owns the cart of one browsing session. Each method is one atomic
// state transition; readers always see a complete state.
type Store struct {
	mu    sync.RWMutex
	state Cart
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddItem(item Item, quantity int, unitPrice decimal.Decimal) (Cart, error) {
	return s.apply(func(c Cart) (Cart, error) {
		return c.Add(item, quantity, unitPrice)
	})
}

func (s *Store) UpdateQuantity(productID string, quantity int) (Cart, error) {
	return s.apply(func(c Cart) (Cart, error) {
		return c.UpdateQuantity(productID, quantity)
	})
}

func (s *Store) RemoveItem(productID string) Cart {
	next, _ := s.apply(func(c Cart) (Cart, error) {
		return c.Remove(productID), nil
	})
	return next
}

func (s *Store) Clear() Cart {
	next, _ := s.apply(func(c Cart) (Cart, error) {
		return c.Clear(), nil
	})
	return next
}

// Snapshot returns the current state; derived totals are computed from it on
// every call.
func (s *Store) Snapshot() Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Store) TotalItems() int {
	return s.Snapshot().TotalItems()
}

func (s *Store) TotalPrice() decimal.Decimal {
	return s.Snapshot().TotalPrice()
}

func (s *Store) apply(reduce func(Cart) (Cart, error)) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduce(s.state)
	if err != nil {
		return s.state, err
	}

	s.state = next
	return next, nil
}
