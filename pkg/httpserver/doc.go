// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, a JSON health handler, and
// structured logging via slog.
//
// The core type is Server. Run blocks until the context is cancelled or an
// interrupt/TERM signal is received, then shuts the server down with a
// configurable deadline. Construction goes through New or NewFromConfig with
// functional options such as WithAddr, WithReadTimeout and WithLogger;
// WithStartHook and WithStopHook let callers run side effects around the
// server life-cycle.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(l *slog.Logger) {
//			l.Info("listening", slog.String("addr", cfg.Addr))
//		}),
//	)
//
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps listen errors with ErrStart, Shutdown wraps underlying shutdown
// errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
