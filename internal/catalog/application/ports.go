package application

import (
	"context"

	"github.com/sahilmehra/zaika/internal/catalog/domain"
)

type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (domain.MenuItem, error)
	Add(ctx context.Context, item domain.MenuItem) error
	Remove(ctx context.Context, id string) error
	SetAvailability(ctx context.Context, id string, available bool) error
}
