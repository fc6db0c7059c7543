package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahilmehra/zaika/internal/catalog/domain"
)

type Service struct {
	repo MenuRepository
}

func NewService(repo MenuRepository) *Service {
	return &Service{repo: repo}
}

// Menu lists catalog items. Customers see only available dishes; the
// operator dashboard asks for everything.
func (s *Service) Menu(ctx context.Context, includeUnavailable bool) ([]domain.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeUnavailable {
		return items, nil
	}

	available := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

func (s *Service) Item(ctx context.Context, id string) (domain.MenuItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) AddDish(ctx context.Context, dish domain.MenuItem) (domain.MenuItem, error) {
	dish.ID = uuid.NewString()
	if err := dish.Validate(); err != nil {
		return domain.MenuItem{}, err
	}
	if err := s.repo.Add(ctx, dish); err != nil {
		return domain.MenuItem{}, err
	}
	return dish, nil
}

// RemoveDish deletes a dish from the menu. Existing orders are unaffected:
// they carry snapshots of the item fields, not references.
func (s *Service) RemoveDish(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}
