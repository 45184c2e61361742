package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/otpkit/api"
	"github.com/dmitrymomot/otpkit/pkg/config"
	"github.com/dmitrymomot/otpkit/pkg/httpserver"
	"github.com/dmitrymomot/otpkit/pkg/logger"
	"github.com/dmitrymomot/otpkit/pkg/requestid"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Server httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "otpd"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("listening", slog.String("addr", cfg.Server.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("stopped")
		}),
	)

	if err := srv.Run(context.Background(), api.Router(log)); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
