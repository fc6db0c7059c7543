package idempotency

import (
	"log/slog"
	"net/http"
)

const HeaderKey = "Idempotency-Key"

// Middleware rejects a request whose Idempotency-Key header was already
// accepted within the store's TTL. Requests without the header pass through.
func Middleware(log *slog.Logger, store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if store == nil || key == "" {
				next.ServeHTTP(w, r)
				return
			}

			seen, err := store.Seen(r.Context(), store.Key(r.URL.Path, key))
			if err != nil {
				log.Error("idempotency check failed", "err", err)
				http.Error(w, "idempotency check failed", http.StatusServiceUnavailable)
				return
			}
			if seen {
				http.Error(w, "duplicate request", http.StatusConflict)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
