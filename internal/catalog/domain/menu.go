package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("menu item not found")
	ErrInvalidDish = errors.New("invalid dish")
)

var Categories = []string{"Starters", "Main Course", "Desserts", "Beverages"}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Available   bool            `json:"available"`
	Spicy       bool            `json:"spicy"`
	Veg         bool            `json:"veg"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// Validate holds the catalog invariant the pricing engine relies on:
// prices and tax rates are never negative.
func (m MenuItem) Validate() error {
	if m.Name == "" || m.Price.IsNegative() || m.TaxRate.IsNegative() {
		return ErrInvalidDish
	}
	return nil
}
