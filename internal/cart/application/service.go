package application

import (
	"context"

	"github.com/shopspring/decimal"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
)

type Service struct {
	store   CartStore
	catalog CatalogReader
}

func NewService(store CartStore, catalog CatalogReader) *Service {
	return &Service{store: store, catalog: catalog}
}

type CartView struct {
	Lines    []cartdomain.Line `json:"lines"`
	Subtotal decimal.Decimal   `json:"subtotal"`
}

func (s *Service) AddItem(ctx context.Context, caller, itemID string) error {
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return err
	}
	return s.store.AddItem(ctx, caller, item)
}

func (s *Service) RemoveItem(ctx context.Context, caller, itemID string) error {
	return s.store.RemoveItem(ctx, caller, itemID)
}

func (s *Service) View(ctx context.Context, caller string) (CartView, error) {
	lines, err := s.store.Lines(ctx, caller)
	if err != nil {
		return CartView{}, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	if lines == nil {
		lines = []cartdomain.Line{}
	}
	return CartView{Lines: lines, Subtotal: subtotal}, nil
}
