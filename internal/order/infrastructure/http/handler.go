package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	offerdomain "github.com/sahilmehra/zaika/internal/offer/domain"
	"github.com/sahilmehra/zaika/internal/order/application"
	"github.com/sahilmehra/zaika/internal/order/domain"
	"github.com/sahilmehra/zaika/pkg/geo"
)

const callerHeader = "X-Caller-Phone"

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

type checkoutReq struct {
	OfferCode string         `json:"offer_code,omitempty"`
	Address   domain.Address `json:"address"`
	Location  *geo.Point     `json:"location,omitempty"`
}

func (r checkoutReq) input() application.CheckoutInput {
	return application.CheckoutInput{
		OfferCode: r.OfferCode,
		Address:   r.Address,
		Location:  r.Location,
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.placeOrder)
	r.Post("/quote", h.quote)
	r.Get("/", h.listAll)
	r.Get("/mine", h.listMine)
	r.Get("/active", h.listActive)
	r.Get("/revenue", h.revenue)
	r.Get("/{id}", h.getOrder)
	r.Patch("/{id}/status", h.updateStatus)

	return r
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlaceOrder")
	defer span.End()

	caller := r.Header.Get(callerHeader)
	if caller == "" {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	order, err := h.service.PlaceOrder(ctx, caller, req.input())
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(order)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuoteOrder")
	defer span.End()

	caller := r.Header.Get(callerHeader)
	if caller == "" {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	breakdown, err := h.service.Quote(ctx, caller, req.input())
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(breakdown)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListOrders")
	defer span.End()

	orders, err := h.service.AllOrders(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOrders(w, orders)
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListMyOrders")
	defer span.End()

	caller := r.Header.Get(callerHeader)
	if caller == "" {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	orders, err := h.service.OrdersByCaller(ctx, caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOrders(w, orders)
}

func (h *Handler) listActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListActiveOrders")
	defer span.End()

	orders, err := h.service.ActiveOrders(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOrders(w, orders)
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TotalRevenue")
	defer span.End()

	total, err := h.service.TotalRevenue(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"total_revenue": total})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	order, err := h.service.Order(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateOrderStatus")
	defer span.End()

	var req struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	order, err := h.service.UpdateStatus(ctx, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, application.ErrRestaurantClosed):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, offerdomain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeOrders(w http.ResponseWriter, orders []domain.Order) {
	if orders == nil {
		orders = []domain.Order{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orders)
}
