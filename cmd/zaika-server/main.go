package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sahilmehra/zaika/internal/config"
	"github.com/sahilmehra/zaika/pkg/geo"
	"github.com/sahilmehra/zaika/pkg/idempotency"
	"github.com/sahilmehra/zaika/pkg/logging"
	"github.com/sahilmehra/zaika/pkg/shutdown"
	"github.com/sahilmehra/zaika/pkg/tracing"

	cartapp "github.com/sahilmehra/zaika/internal/cart/application"
	carthttp "github.com/sahilmehra/zaika/internal/cart/infrastructure/http"
	cartmemory "github.com/sahilmehra/zaika/internal/cart/infrastructure/memory"
	catalogapp "github.com/sahilmehra/zaika/internal/catalog/application"
	cataloghttp "github.com/sahilmehra/zaika/internal/catalog/infrastructure/http"
	catalogmemory "github.com/sahilmehra/zaika/internal/catalog/infrastructure/memory"
	offerapp "github.com/sahilmehra/zaika/internal/offer/application"
	offerhttp "github.com/sahilmehra/zaika/internal/offer/infrastructure/http"
	offermemory "github.com/sahilmehra/zaika/internal/offer/infrastructure/memory"
	orderapp "github.com/sahilmehra/zaika/internal/order/application"
	orderhttp "github.com/sahilmehra/zaika/internal/order/infrastructure/http"
	ordermemory "github.com/sahilmehra/zaika/internal/order/infrastructure/memory"
	restaurantapp "github.com/sahilmehra/zaika/internal/restaurant/application"
	restaurantdomain "github.com/sahilmehra/zaika/internal/restaurant/domain"
	restauranthttp "github.com/sahilmehra/zaika/internal/restaurant/infrastructure/http"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logging.New("info").Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, "zaika-server", cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	// Stores: everything lives for the process lifetime only.
	menuRepo := catalogmemory.NewRepository(catalogmemory.SeedMenu())
	offerRepo := offermemory.NewRepository(offermemory.SeedOffers())
	cartStore := cartmemory.NewStore()
	orderRepo := ordermemory.NewRepository()

	catalogSvc := catalogapp.NewService(menuRepo)
	offerSvc := offerapp.NewService(offerRepo)
	cartSvc := cartapp.NewService(cartStore, catalogSvc)
	restaurantSvc := restaurantapp.NewService(restaurantdomain.Settings{
		Live:                  cfg.RestaurantLive,
		Location:              geo.Point{Lat: cfg.RestaurantLat, Lng: cfg.RestaurantLng},
		DeliveryRatePerKm:     decimal.NewFromFloat(cfg.DeliveryRatePerKm),
		FreeDeliveryThreshold: decimal.NewFromFloat(cfg.FreeDeliveryThreshold),
	})
	orderSvc := orderapp.NewService(log, orderRepo, cartStore, offerSvc, restaurantSvc)

	// Duplicate-submission guard, active only when Redis is configured.
	var idemStore *idempotency.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		idemStore = idempotency.NewStore(rdb, cfg.IdempotencyTTL)
		log.Info("idempotency store enabled", "redis_addr", cfg.RedisAddr)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Mount("/menu", cataloghttp.NewHandler(log, catalogSvc).Routes())
	r.Mount("/cart", carthttp.NewHandler(log, cartSvc).Routes())
	r.Mount("/offers", offerhttp.NewHandler(log, offerSvc).Routes())
	r.Mount("/settings", restauranthttp.NewHandler(log, restaurantSvc).Routes())

	orders := orderhttp.NewHandler(log, orderSvc).Routes()
	r.Route("/orders", func(r chi.Router) {
		r.Use(idempotency.Middleware(log, idemStore))
		r.Mount("/", orders)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("zaika-server shutdown complete")
}
