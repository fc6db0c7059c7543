package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sahilmehra/zaika/internal/offer/domain"
)

type Repository struct {
	mu     sync.RWMutex
	offers []domain.Offer
}

func NewRepository(seed []domain.Offer) *Repository {
	offers := make([]domain.Offer, len(seed))
	copy(offers, seed)
	return &Repository{offers: offers}
}

// SeedOffers is the launch promotion set.
func SeedOffers() []domain.Offer {
	return []domain.Offer{
		{
			ID:           "off1",
			Code:         "WELCOME50",
			Description:  "₹50 off on orders above ₹500",
			Kind:         domain.KindFixed,
			Value:        decimal.NewFromInt(50),
			MinCartValue: decimal.NewFromInt(500),
			Active:       true,
		},
	}
}

func (r *Repository) List(_ context.Context) ([]domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func (r *Repository) GetByCode(_ context.Context, code string) (domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.offers {
		if o.Code == code {
			return o, nil
		}
	}
	return domain.Offer{}, domain.ErrNotFound
}

func (r *Repository) Add(_ context.Context, offer domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.offers = append(r.offers, offer)
	return nil
}

func (r *Repository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.offers {
		if r.offers[i].ID == id {
			r.offers[i].Active = active
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Repository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.offers {
		if o.ID == id {
			r.offers = append(r.offers[:i], r.offers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
