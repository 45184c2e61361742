package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/dmitrymomot/otpkit/pkg/httpserver"
	"github.com/dmitrymomot/otpkit/pkg/requestid"
)

// Router assembles the HTTP surface of the service:
//
//	POST /api/generate        generate a one-time password
//	POST /api/verify          verify a one-time password
//	GET  /api/generate-secret generate a random Base32 secret
//	GET  /api/health          liveness probe
//
// CORS is open to any origin so browser frontends can call the API directly.
func Router(log *slog.Logger) http.Handler {
	h := &handlers{log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requestLogger(log))
	r.Use(cors.AllowAll().Handler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.generate)
		r.Post("/verify", h.verify)
		r.Get("/generate-secret", h.generateSecret)
		r.Get("/health", httpserver.HealthHandler(log))
	})

	return r
}

// requestLogger emits one structured log line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
