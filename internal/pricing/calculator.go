package pricing

import (
	"github.com/shopspring/decimal"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	offerdomain "github.com/sahilmehra/zaika/internal/offer/domain"
	"github.com/sahilmehra/zaika/pkg/geo"
)

type TaxLine struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

type Breakdown struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxLines    []TaxLine       `json:"tax_breakdown"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	DistanceKm  float64         `json:"distance_km"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Discount    decimal.Decimal `json:"discount"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

type Params struct {
	Origin                geo.Point
	Destination           *geo.Point
	RatePerKm             decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
}

// Price derives a full breakdown from cart lines, an optional offer and the
// delivery parameters. Money stays exact; only the delivery fee is rounded,
// up, because it is charged in whole currency units. The grand total is
// floored at zero so an oversized fixed discount cannot produce a negative
// invoice.
func Price(lines []cartdomain.Line, offer *offerdomain.Offer, p Params) Breakdown {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	taxLines := make([]TaxLine, 0, len(lines))
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
		tax := l.Tax()
		taxLines = append(taxLines, TaxLine{Name: l.Name, Rate: l.TaxRate, Amount: tax})
		totalTax = totalTax.Add(tax)
	}

	discount := offer.Discount(subtotal)

	var distanceKm float64
	if p.Destination != nil {
		distanceKm = geo.DistanceKm(p.Origin, *p.Destination)
	}
	fee := decimal.NewFromFloat(distanceKm).Mul(p.RatePerKm).Ceil()

	afterDiscount := subtotal.Sub(discount)
	if p.FreeDeliveryThreshold.IsPositive() && afterDiscount.GreaterThanOrEqual(p.FreeDeliveryThreshold) {
		fee = decimal.Zero
	}

	total := subtotal.Add(totalTax).Add(fee).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Breakdown{
		Subtotal:    subtotal,
		TaxLines:    taxLines,
		TotalTax:    totalTax,
		DistanceKm:  distanceKm,
		DeliveryFee: fee,
		Discount:    discount,
		GrandTotal:  total,
	}
}
