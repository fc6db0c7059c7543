package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("offer not found")
	ErrInvalidOffer = errors.New("invalid offer")
)

type Kind string

const (
	KindPercent Kind = "percent"
	KindFixed   Kind = "fixed"
)

type Offer struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Kind         Kind            `json:"kind"`
	Value        decimal.Decimal `json:"value"`
	MinCartValue decimal.Decimal `json:"min_cart_value"`
	// MaxDiscount caps percent offers only; nil means uncapped.
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
	Active      bool             `json:"active"`
}

func (o *Offer) Validate() error {
	if o.Code == "" || o.Value.IsNegative() || o.MinCartValue.IsNegative() {
		return ErrInvalidOffer
	}
	if o.Kind != KindPercent && o.Kind != KindFixed {
		return ErrInvalidOffer
	}
	return nil
}

// Discount evaluates the offer against a cart subtotal. A nil or inactive
// offer, or a subtotal below the qualifying minimum, yields zero. Fixed
// discounts are not capped by the subtotal; percent discounts honor
// MaxDiscount when set and positive.
func (o *Offer) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if o == nil || !o.Active || subtotal.LessThan(o.MinCartValue) {
		return decimal.Zero
	}

	switch o.Kind {
	case KindFixed:
		return o.Value
	case KindPercent:
		d := subtotal.Mul(o.Value).Shift(-2)
		if o.MaxDiscount != nil && o.MaxDiscount.IsPositive() && d.GreaterThan(*o.MaxDiscount) {
			return *o.MaxDiscount
		}
		return d
	}
	return decimal.Zero
}
