package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilmehra/zaika/internal/offer/domain"
)

type Service struct {
	repo OfferRepository
}

func NewService(repo OfferRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Offers(ctx context.Context) ([]domain.Offer, error) {
	return s.repo.List(ctx)
}

// Redeemable resolves a promo code to an offer for checkout. Codes are
// case-insensitive.
func (s *Service) Redeemable(ctx context.Context, code string) (domain.Offer, error) {
	return s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *Service) CreateOffer(ctx context.Context, offer domain.Offer) (domain.Offer, error) {
	offer.ID = uuid.NewString()
	offer.Code = strings.ToUpper(strings.TrimSpace(offer.Code))
	if err := offer.Validate(); err != nil {
		return domain.Offer{}, err
	}
	if err := s.repo.Add(ctx, offer); err != nil {
		return domain.Offer{}, err
	}
	return offer, nil
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *Service) RemoveOffer(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
