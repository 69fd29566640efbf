// Command server runs the gchan message-board API.
//
//	@title			gchan API
//	@version		1.0
//	@description	Message board backend: posts, replies, marquees, placeholders, Slack posting and media uploads.
//	@license.name	MIT
//	@BasePath		/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gchan/gchan-backend/internal/app"
	"github.com/gchan/gchan-backend/internal/config"
	"github.com/gchan/gchan-backend/internal/observability"
	"github.com/gchan/gchan-backend/internal/sysutil"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// load .env file if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	ver := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)
	sysutil.SetupLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty, observability.ServiceName(cfg.OTEL), ver)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, ver)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		stop()
		os.Exit(1)
	}
}
