package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahilmehra/zaika/internal/restaurant/application"
	"github.com/sahilmehra/zaika/internal/restaurant/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("restaurant-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.getSettings)
	r.Put("/", h.updateSettings)
	r.Patch("/live", h.setLive)

	return r
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetSettings")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.service.Settings(ctx))
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateSettings")
	defer span.End()

	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	updated := h.service.Update(ctx, settings)
	h.log.Info("settings updated",
		"live", updated.Live,
		"rate_per_km", updated.DeliveryRatePerKm,
		"free_delivery_threshold", updated.FreeDeliveryThreshold,
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}

func (h *Handler) setLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SetLive")
	defer span.End()

	var req struct {
		Live bool `json:"live"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	updated := h.service.SetLive(ctx, req.Live)
	h.log.Info("restaurant live flag changed", "live", updated.Live)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}
