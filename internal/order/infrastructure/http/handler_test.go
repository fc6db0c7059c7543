package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cartmemory "github.com/sahilmehra/zaika/internal/cart/infrastructure/memory"
	catalogdomain "github.com/sahilmehra/zaika/internal/catalog/domain"
	offerapp "github.com/sahilmehra/zaika/internal/offer/application"
	offermemory "github.com/sahilmehra/zaika/internal/offer/infrastructure/memory"
	"github.com/sahilmehra/zaika/internal/order/application"
	"github.com/sahilmehra/zaika/internal/order/domain"
	ordermemory "github.com/sahilmehra/zaika/internal/order/infrastructure/memory"
	restaurantapp "github.com/sahilmehra/zaika/internal/restaurant/application"
	restaurantdomain "github.com/sahilmehra/zaika/internal/restaurant/domain"
	"github.com/sahilmehra/zaika/pkg/geo"
)

const testCaller = "9812345670"

func newServer(t *testing.T) (*httptest.Server, *cartmemory.Store) {
	t.Helper()

	carts := cartmemory.NewStore()
	svc := application.NewService(
		slog.New(slog.DiscardHandler),
		ordermemory.NewRepository(),
		carts,
		offerapp.NewService(offermemory.NewRepository(offermemory.SeedOffers())),
		restaurantapp.NewService(restaurantdomain.Settings{
			Live:                  true,
			Location:              geo.Point{Lat: 28.6139, Lng: 77.2090},
			DeliveryRatePerKm:     decimal.NewFromInt(40),
			FreeDeliveryThreshold: decimal.NewFromInt(500),
		}),
	)

	srv := httptest.NewServer(NewHandler(slog.New(slog.DiscardHandler), svc).Routes())
	t.Cleanup(srv.Close)
	return srv, carts
}

func fillCart(t *testing.T, carts *cartmemory.Store) {
	t.Helper()
	require.NoError(t, carts.AddItem(context.Background(), testCaller, catalogdomain.MenuItem{
		ID:        "1",
		Name:      "Risotto",
		Price:     decimal.RequireFromString("18.99"),
		TaxRate:   decimal.NewFromInt(5),
		Available: true,
	}))
}

func do(t *testing.T, method, url, body string, withCaller bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if withCaller {
		req.Header.Set(callerHeader, testCaller)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

const checkoutBody = `{
	"address": {"house_no": "42B", "area": "Hauz Khas"},
	"location": {"lat": 28.6139, "lng": 77.2090}
}`

func TestPlaceOrderEndpoint(t *testing.T) {
	srv, carts := newServer(t)
	fillCart(t, carts)

	resp := do(t, http.MethodPost, srv.URL+"/", checkoutBody, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	require.Equal(t, domain.StatusPending, order.Status)
	require.True(t, order.Pricing.GrandTotal.Equal(decimal.RequireFromString("19.9395")))
}

func TestPlaceOrderRequiresCaller(t *testing.T) {
	srv, _ := newServer(t)
	resp := do(t, http.MethodPost, srv.URL+"/", checkoutBody, false)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	srv, _ := newServer(t)
	resp := do(t, http.MethodPost, srv.URL+"/", checkoutBody, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuoteEndpoint(t *testing.T) {
	srv, carts := newServer(t)
	fillCart(t, carts)

	resp := do(t, http.MethodPost, srv.URL+"/quote", checkoutBody, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var b struct {
		GrandTotal decimal.Decimal `json:"grand_total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
	require.True(t, b.GrandTotal.Equal(decimal.RequireFromString("19.9395")))

	// Quoting leaves the cart in place.
	lines, err := carts.Lines(context.Background(), testCaller)
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestStatusTransitionEndpoint(t *testing.T) {
	srv, carts := newServer(t)
	fillCart(t, carts)

	resp := do(t, http.MethodPost, srv.URL+"/", checkoutBody, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))

	resp = do(t, http.MethodPatch, srv.URL+"/"+order.ID+"/status", `{"status":"preparing"}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Skipping ahead is a conflict.
	resp = do(t, http.MethodPatch, srv.URL+"/"+order.ID+"/status", `{"status":"delivered"}`, false)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestStatusTransitionUnknownOrder(t *testing.T) {
	srv, _ := newServer(t)
	resp := do(t, http.MethodPatch, srv.URL+"/missing/status", `{"status":"preparing"}`, false)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListMineEndpoint(t *testing.T) {
	srv, carts := newServer(t)
	fillCart(t, carts)

	resp := do(t, http.MethodPost, srv.URL+"/", checkoutBody, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/mine", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 1)
}

func TestRevenueEndpoint(t *testing.T) {
	srv, carts := newServer(t)
	fillCart(t, carts)

	resp := do(t, http.MethodPost, srv.URL+"/", checkoutBody, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))

	for _, next := range []string{"preparing", "ready", "out-for-delivery", "delivered"} {
		resp = do(t, http.MethodPatch, srv.URL+"/"+order.ID+"/status", `{"status":"`+next+`"}`, false)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp = do(t, http.MethodGet, srv.URL+"/revenue", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rev struct {
		TotalRevenue decimal.Decimal `json:"total_revenue"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rev))
	require.True(t, rev.TotalRevenue.Equal(order.Pricing.GrandTotal))
}
