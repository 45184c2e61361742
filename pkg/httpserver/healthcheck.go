package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/logger"
)

type healthStatus struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// HealthHandler returns an HTTP handler usable for both liveness and
// readiness probes.
//
//   - Liveness: with no dependency functions the handler always reports
//     {"status":"healthy"} with 200 OK.
//   - Readiness: with dependency functions each is executed; if any fails the
//     handler reports {"status":"unhealthy"} with 500.
//
// The timestamp field carries the server's current Unix time so probes can
// detect clock skew against the verifier.
func HealthHandler(log *slog.Logger, checks ...func(*http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{Status: "healthy", Timestamp: time.Now().Unix()}
		code := http.StatusOK

		for _, check := range checks {
			if err := check(r); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				status.Status = "unhealthy"
				code = http.StatusInternalServerError
				break
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	}
}
