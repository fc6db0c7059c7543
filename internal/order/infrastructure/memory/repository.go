package memory

import (
	"context"
	"sync"

	"github.com/sahilmehra/zaika/internal/order/domain"
)

// Repository holds the order collection, most recent first. Orders change
// only by whole-value replacement under the lock, so readers never observe
// a half-updated order.
type Repository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Append(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]domain.Order{o}, r.orders...)
	return nil
}

func (r *Repository) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

// Transition applies the status change as one indivisible lookup-validate-
// replace step.
func (r *Repository) Transition(_ context.Context, id string, next domain.Status) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID != id {
			continue
		}
		updated, err := o.WithStatus(next)
		if err != nil {
			return domain.Order{}, err
		}
		r.orders[i] = updated
		return updated, nil
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (r *Repository) ListByCaller(_ context.Context, caller string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.Caller == caller {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *Repository) ListActive(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.Active() {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *Repository) All(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
