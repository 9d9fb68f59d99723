package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/osdetect/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

type healthStatus struct {
	Status string `json:"status"`
}

// HealthHandler answers liveness and readiness probes with a JSON status.
// With no checks it always reports {"status":"ok"}. Otherwise every check
// must pass; the first failure is logged and answered with 503 and
// {"status":"unavailable"}.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, healthStatus{Status: "ok"}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "health check failed", logger.Error(err))
				status, body = http.StatusServiceUnavailable, healthStatus{Status: "unavailable"}
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
