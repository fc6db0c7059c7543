package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	offerdomain "github.com/sahilmehra/zaika/internal/offer/domain"
	"github.com/sahilmehra/zaika/internal/order/domain"
	"github.com/sahilmehra/zaika/internal/pricing"
	"github.com/sahilmehra/zaika/pkg/geo"
)

var ErrRestaurantClosed = errors.New("restaurant is not accepting orders")

type Service struct {
	log      *slog.Logger
	repo     OrderRepository
	carts    CartSource
	offers   OfferSource
	settings SettingsSource
}

func NewService(log *slog.Logger, repo OrderRepository, carts CartSource, offers OfferSource, settings SettingsSource) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		carts:    carts,
		offers:   offers,
		settings: settings,
	}
}

type CheckoutInput struct {
	OfferCode string
	Address   domain.Address
	Location  *geo.Point
}

// Quote prices the caller's current cart without placing an order. A closed
// restaurant still quotes; only submission is gated.
func (s *Service) Quote(ctx context.Context, caller string, in CheckoutInput) (pricing.Breakdown, error) {
	lines, err := s.carts.Lines(ctx, caller)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	offer, err := s.resolveOffer(ctx, in.OfferCode)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return pricing.Price(lines, offer, s.pricingParams(ctx, in.Location)), nil
}

// PlaceOrder prices the caller's cart, constructs the order, appends it to
// the collection and clears the cart.
func (s *Service) PlaceOrder(ctx context.Context, caller string, in CheckoutInput) (domain.Order, error) {
	if !s.settings.Settings(ctx).Live {
		return domain.Order{}, ErrRestaurantClosed
	}

	lines, err := s.carts.Lines(ctx, caller)
	if err != nil {
		return domain.Order{}, err
	}

	offer, err := s.resolveOffer(ctx, in.OfferCode)
	if err != nil {
		return domain.Order{}, err
	}

	breakdown := pricing.Price(lines, offer, s.pricingParams(ctx, in.Location))

	order, err := domain.NewOrder(lines, breakdown, in.Address, caller, in.Location)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.repo.Append(ctx, order); err != nil {
		return domain.Order{}, err
	}
	if err := s.carts.Clear(ctx, caller); err != nil {
		s.log.Warn("cart clear failed after order placement", "order_id", order.ID, "err", err)
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"caller", caller,
		"grand_total", order.Pricing.GrandTotal,
	)
	return order, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, next domain.Status) (domain.Order, error) {
	order, err := s.repo.Transition(ctx, id, next)
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order status changed", "order_id", id, "status", next)
	return order, nil
}

func (s *Service) Order(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) OrdersByCaller(ctx context.Context, caller string) ([]domain.Order, error) {
	return s.repo.ListByCaller(ctx, caller)
}

func (s *Service) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) AllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.All(ctx)
}

// TotalRevenue sums the grand totals of delivered orders.
func (s *Service) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == domain.StatusDelivered {
			sum = sum.Add(o.Pricing.GrandTotal)
		}
	}
	return sum, nil
}

func (s *Service) resolveOffer(ctx context.Context, code string) (*offerdomain.Offer, error) {
	if code == "" {
		return nil, nil
	}
	offer, err := s.offers.Redeemable(ctx, code)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *Service) pricingParams(ctx context.Context, destination *geo.Point) pricing.Params {
	settings := s.settings.Settings(ctx)
	return pricing.Params{
		Origin:                settings.Location,
		Destination:           destination,
		RatePerKm:             settings.DeliveryRatePerKm,
		FreeDeliveryThreshold: settings.FreeDeliveryThreshold,
	}
}
