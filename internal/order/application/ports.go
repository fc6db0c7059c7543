package application

import (
	"context"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	offerdomain "github.com/sahilmehra/zaika/internal/offer/domain"
	"github.com/sahilmehra/zaika/internal/order/domain"
	restaurantdomain "github.com/sahilmehra/zaika/internal/restaurant/domain"
)

type OrderRepository interface {
	Append(ctx context.Context, o domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
	Transition(ctx context.Context, id string, next domain.Status) (domain.Order, error)
	ListByCaller(ctx context.Context, caller string) ([]domain.Order, error)
	ListActive(ctx context.Context) ([]domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
}

type CartSource interface {
	Lines(ctx context.Context, caller string) ([]cartdomain.Line, error)
	Clear(ctx context.Context, caller string) error
}

type OfferSource interface {
	Redeemable(ctx context.Context, code string) (offerdomain.Offer, error)
}

type SettingsSource interface {
	Settings(ctx context.Context) restaurantdomain.Settings
}
