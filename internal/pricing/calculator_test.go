package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	offerdomain "github.com/sahilmehra/zaika/internal/offer/domain"
	"github.com/sahilmehra/zaika/pkg/geo"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(name, price string, qty int, taxRate string) cartdomain.Line {
	return cartdomain.Line{
		ItemID:    name,
		Name:      name,
		UnitPrice: dec(price),
		TaxRate:   dec(taxRate),
		Quantity:  qty,
	}
}

func params(rate, threshold string) Params {
	return Params{
		Origin:                geo.Point{Lat: 28.6139, Lng: 77.2090},
		RatePerKm:             dec(rate),
		FreeDeliveryThreshold: dec(threshold),
	}
}

func TestPriceSingleLineNoOffer(t *testing.T) {
	p := params("40", "500")
	dest := p.Origin
	p.Destination = &dest

	b := Price([]cartdomain.Line{line("Risotto", "18.99", 1, "5")}, nil, p)

	require.True(t, b.Subtotal.Equal(dec("18.99")))
	require.True(t, b.TotalTax.Equal(dec("0.9495")))
	require.Zero(t, b.DistanceKm)
	require.True(t, b.DeliveryFee.IsZero())
	require.True(t, b.Discount.IsZero())
	require.True(t, b.GrandTotal.Equal(dec("19.9395")))
}

func TestPriceOfferBelowMinimum(t *testing.T) {
	offer := &offerdomain.Offer{
		Code: "WELCOME50", Kind: offerdomain.KindFixed,
		Value: dec("50"), MinCartValue: dec("500"), Active: true,
	}

	b := Price([]cartdomain.Line{line("Risotto", "18.99", 1, "5")}, offer, params("40", "500"))
	require.True(t, b.Discount.IsZero())
}

func TestPricePercentOfferCapped(t *testing.T) {
	limit := dec("50")
	offer := &offerdomain.Offer{
		Code: "TEN", Kind: offerdomain.KindPercent,
		Value: dec("10"), MinCartValue: dec("500"), MaxDiscount: &limit, Active: true,
	}

	b := Price([]cartdomain.Line{line("Feast", "600", 1, "0")}, offer, params("40", "0"))
	require.True(t, b.Discount.Equal(dec("50")))
}

func TestPriceDeliveryFeeCeiling(t *testing.T) {
	// Just under 2.5 km at 40/km: the rounded-up fee is 100 and the
	// free-delivery threshold is out of reach.
	p := params("40", "500")
	dest := destinationAtKm(p.Origin, 2.49)
	p.Destination = &dest

	b := Price([]cartdomain.Line{line("Wings", "100", 1, "0")}, nil, p)

	require.InDelta(t, 2.49, b.DistanceKm, 0.01)
	require.True(t, b.DeliveryFee.Equal(dec("100")), "fee was %s", b.DeliveryFee)
}

func TestPriceFreeDeliveryAtThresholdExactly(t *testing.T) {
	p := params("40", "500")
	dest := destinationAtKm(p.Origin, 2.49)
	p.Destination = &dest

	b := Price([]cartdomain.Line{line("Feast", "500", 1, "0")}, nil, p)
	require.True(t, b.DeliveryFee.IsZero())
}

func TestPriceFreeDeliveryConsidersDiscount(t *testing.T) {
	// 550 - 100 = 450 lands below the 500 threshold, so the fee stays.
	offer := &offerdomain.Offer{
		Code: "FLAT100", Kind: offerdomain.KindFixed,
		Value: dec("100"), MinCartValue: dec("0"), Active: true,
	}
	p := params("40", "500")
	dest := destinationAtKm(p.Origin, 2.49)
	p.Destination = &dest

	b := Price([]cartdomain.Line{line("Feast", "550", 1, "0")}, offer, p)
	require.True(t, b.DeliveryFee.Equal(dec("100")))
}

func TestPriceZeroThresholdNeverWaivesFee(t *testing.T) {
	p := params("40", "0")
	dest := destinationAtKm(p.Origin, 2.49)
	p.Destination = &dest

	b := Price([]cartdomain.Line{line("Feast", "1000", 1, "0")}, nil, p)
	require.True(t, b.DeliveryFee.Equal(dec("100")))
}

func TestPriceMissingDestination(t *testing.T) {
	b := Price([]cartdomain.Line{line("Wings", "100", 1, "0")}, nil, params("40", "0"))

	require.Zero(t, b.DistanceKm)
	require.True(t, b.DeliveryFee.IsZero())
}

func TestPriceTaxAdditivity(t *testing.T) {
	lines := []cartdomain.Line{
		line("Risotto", "18.99", 2, "5"),
		line("Wings", "12.50", 1, "12"),
		line("Latte", "5.75", 3, "18"),
	}

	b := Price(lines, nil, params("40", "0"))

	sum := decimal.Zero
	for i, tl := range b.TaxLines {
		expected := lines[i].UnitPrice.
			Mul(decimal.NewFromInt(int64(lines[i].Quantity))).
			Mul(lines[i].TaxRate).
			Shift(-2)
		require.True(t, tl.Amount.Equal(expected))
		sum = sum.Add(tl.Amount)
	}
	require.True(t, sum.Equal(b.TotalTax))
}

func TestPriceTotalReconciliation(t *testing.T) {
	offer := &offerdomain.Offer{
		Code: "TEN", Kind: offerdomain.KindPercent,
		Value: dec("10"), MinCartValue: dec("0"), Active: true,
	}
	p := params("40", "0")
	dest := destinationAtKm(p.Origin, 3.2)
	p.Destination = &dest

	b := Price([]cartdomain.Line{
		line("Risotto", "18.99", 2, "5"),
		line("Salmon", "22.00", 1, "5"),
	}, offer, p)

	expected := b.Subtotal.Add(b.TotalTax).Add(b.DeliveryFee).Sub(b.Discount)
	require.True(t, b.GrandTotal.Equal(expected))
}

func TestPriceGrandTotalFlooredAtZero(t *testing.T) {
	offer := &offerdomain.Offer{
		Code: "HUGE", Kind: offerdomain.KindFixed,
		Value: dec("500"), MinCartValue: dec("0"), Active: true,
	}

	b := Price([]cartdomain.Line{line("Bread", "6.50", 1, "5")}, offer, params("40", "0"))

	require.True(t, b.Discount.Equal(dec("500")))
	require.True(t, b.GrandTotal.IsZero())
}

func TestPriceEmptyLines(t *testing.T) {
	b := Price(nil, nil, params("40", "0"))

	require.True(t, b.Subtotal.IsZero())
	require.True(t, b.TotalTax.IsZero())
	require.True(t, b.GrandTotal.IsZero())
}

// destinationAtKm places a point the given distance due east of origin.
// Distance is near-linear in longitude at this scale, so a few scaling
// rounds converge well past the precision the assertions need.
func destinationAtKm(origin geo.Point, km float64) geo.Point {
	dest := origin
	dest.Lng += 0.01
	for i := 0; i < 50; i++ {
		d := geo.DistanceKm(origin, dest)
		dest.Lng = origin.Lng + (dest.Lng-origin.Lng)*km/d
	}
	return dest
}
