// Package app owns the server lifecycle: tracing, the store, the upload
// directory, the Gin engine and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/config"
	httpapi "github.com/gchan/gchan-backend/internal/http"
	"github.com/gchan/gchan-backend/internal/imgur"
	"github.com/gchan/gchan-backend/internal/observability"
	"github.com/gchan/gchan-backend/internal/repo"
)

// App groups server state and components.
type App struct {
	cfg     config.Config
	version string

	db            *gorm.DB
	engine        *gin.Engine
	srv           *http.Server
	traceShutdown func(context.Context) error
}

// New sets up everything that does not need a running server: tracing, the
// store (opened, pinged and migrated), the upload directory and the routes.
// Nothing listens until Run.
func New(ctx context.Context, cfg config.Config, version string) (*App, error) {
	traceShutdown, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		_ = traceShutdown(ctx)
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	db, err := repo.Open(ctx, cfg.DB)
	if err != nil {
		_ = traceShutdown(ctx)
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		_ = repo.Close(db)
		_ = traceShutdown(ctx)
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	relay := imgur.New(cfg.Imgur.APIURL, cfg.Imgur.ClientID, cfg.Imgur.Timeout)
	httpapi.RegisterRoutes(r, db, relay, cfg)

	a := &App{
		cfg:           cfg,
		version:       version,
		db:            db,
		engine:        r,
		traceShutdown: traceShutdown,
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    cfg.MaxHeaderBytes,
		},
	}
	return a, nil
}

// Handler exposes the routed engine.
func (a *App) Handler() http.Handler { return a.engine }

// Run serves HTTP and blocks until ctx is cancelled or the listener fails.
// Either way the app is shut down before Run returns.
func (a *App) Run(ctx context.Context) error {
	errCh := a.startHTTP()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return a.Shutdown(sctx)
	case err := <-errCh:
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return errors.Join(err, a.Shutdown(sctx))
	}
}

// startHTTP starts the server in the background; the channel carries a
// listener failure, never http.ErrServerClosed.
func (a *App) startHTTP() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", a.srv.Addr).
			Str("version", a.version).
			Str("db_driver", a.cfg.DB.Driver).
			Msg("http server listening")
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// Shutdown drains in-flight requests, flushes pending spans and closes the
// pool. All steps run even when an earlier one fails.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if a.traceShutdown != nil {
		if err := a.traceShutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("trace shutdown: %w", err))
		}
	}
	if err := repo.Close(a.db); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
