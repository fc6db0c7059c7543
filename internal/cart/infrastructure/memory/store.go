package memory

import (
	"context"
	"sync"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	catalogdomain "github.com/sahilmehra/zaika/internal/catalog/domain"
)

// Store keeps one in-progress cart per caller. All mutation happens under
// the store lock; carts never escape by reference.
type Store struct {
	mu    sync.Mutex
	carts map[string]*cartdomain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*cartdomain.Cart)}
}

func (s *Store) AddItem(_ context.Context, caller string, item catalogdomain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[caller]
	if !ok {
		cart = &cartdomain.Cart{}
		s.carts[caller] = cart
	}
	return cart.Add(item)
}

func (s *Store) RemoveItem(_ context.Context, caller, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[caller]
	if !ok {
		return cartdomain.ErrLineNotFound
	}
	if err := cart.Remove(itemID); err != nil {
		return err
	}
	if cart.Empty() {
		delete(s.carts, caller)
	}
	return nil
}

func (s *Store) Lines(_ context.Context, caller string) ([]cartdomain.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[caller]
	if !ok {
		return nil, nil
	}
	return cart.Lines(), nil
}

func (s *Store) Clear(_ context.Context, caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, caller)
	return nil
}
