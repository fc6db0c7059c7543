package application

import (
	"context"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	catalogdomain "github.com/sahilmehra/zaika/internal/catalog/domain"
)

type CartStore interface {
	AddItem(ctx context.Context, caller string, item catalogdomain.MenuItem) error
	RemoveItem(ctx context.Context, caller, itemID string) error
	Lines(ctx context.Context, caller string) ([]cartdomain.Line, error)
	Clear(ctx context.Context, caller string) error
}

type CatalogReader interface {
	Item(ctx context.Context, id string) (catalogdomain.MenuItem, error)
}
