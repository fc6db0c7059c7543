package memory

import (
	"context"
	"sync"

	"github.com/sahilmehra/zaika/internal/catalog/domain"
)

type Repository struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewRepository(seed []domain.MenuItem) *Repository {
	items := make([]domain.MenuItem, len(seed))
	copy(items, seed)
	return &Repository{items: items}
}

func (r *Repository) List(_ context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *Repository) Get(_ context.Context, id string) (domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.MenuItem{}, domain.ErrNotFound
}

func (r *Repository) Add(_ context.Context, item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func (r *Repository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Repository) SetAvailability(_ context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Available = available
			return nil
		}
	}
	return domain.ErrNotFound
}
