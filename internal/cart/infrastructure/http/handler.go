package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahilmehra/zaika/internal/cart/application"
	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	catalogdomain "github.com/sahilmehra/zaika/internal/catalog/domain"
)

// CallerHeader carries the identity string issued by the external
// login step. The service never inspects it beyond equality.
const CallerHeader = "X-Caller-Phone"

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("cart-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.viewCart)
	r.Post("/items", h.addItem)
	r.Delete("/items/{id}", h.removeItem)

	return r
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ViewCart")
	defer span.End()

	caller := r.Header.Get(CallerHeader)
	if caller == "" {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	view, err := h.service.View(ctx, caller)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AddCartItem")
	defer span.End()

	caller := r.Header.Get(CallerHeader)
	if caller == "" {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.service.AddItem(ctx, caller, req.ItemID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RemoveCartItem")
	defer span.End()

	caller := r.Header.Get(CallerHeader)
	if caller == "" {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	if err := h.service.RemoveItem(ctx, caller, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrNotFound), errors.Is(err, cartdomain.ErrLineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cartdomain.ErrItemUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
