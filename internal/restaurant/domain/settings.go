package domain

import (
	"github.com/shopspring/decimal"

	"github.com/sahilmehra/zaika/pkg/geo"
)

// Settings are the operator-tunable delivery knobs. Rate and threshold are
// intentionally unbounded; the dashboard owns what values make sense.
type Settings struct {
	Live                  bool            `json:"live"`
	Location              geo.Point       `json:"location"`
	DeliveryRatePerKm     decimal.Decimal `json:"delivery_rate_per_km"`
	FreeDeliveryThreshold decimal.Decimal `json:"free_delivery_threshold"`
}
