package application

import (
	"context"

	"github.com/sahilmehra/zaika/internal/offer/domain"
)

type OfferRepository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	GetByCode(ctx context.Context, code string) (domain.Offer, error)
	Add(ctx context.Context, offer domain.Offer) error
	SetActive(ctx context.Context, id string, active bool) error
	Remove(ctx context.Context, id string) error
}
