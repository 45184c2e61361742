// Package logger builds configured slog.Logger instances with environment
// presets, static attributes, and context-aware attribute extraction.
//
// The factory in factory.go assembles a JSON or text slog handler from
// functional options. Handlers are wrapped with a decorator that runs
// registered ContextExtractor functions on every log call, which is how
// request-scoped values such as request IDs end up on log records without
// every call site threading them through.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "otpd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("listening", slog.String("addr", cfg.Addr))
//
// Attribute helpers such as Error and Component keep attribute keys
// consistent across the codebase.
package logger
