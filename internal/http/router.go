// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, compression, idempotency, and rate limiting.
//
// Middleware is composed per route group: body parsing only runs for the
// board collections, file staging only for the upload routes, and the rate
// limiter only guards writes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/gchan/gchan-backend/docs"
	"github.com/gchan/gchan-backend/internal/config"
	"github.com/gchan/gchan-backend/internal/http/handlers"
	"github.com/gchan/gchan-backend/internal/http/middleware"
	"github.com/gchan/gchan-backend/internal/imgur"
	"github.com/gchan/gchan-backend/internal/repo"
	"github.com/gchan/gchan-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and builds the services behind them.
//
// Global middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Metrics
//  6. CORS and security headers
//
// gzip is attached to the JSON groups only; uploads and staged media go out
// uncompressed. Writes additionally pass the idempotency validator and then
// the rate limiter, so replays bypass the limiter.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, relay services.Relay, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))
	r.Use(middleware.Recovery())

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(corsMiddleware(cfg.CORS)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Dependency injection: services ← db/relay
	msgSvc := &services.MessageService{
		DB:             db,
		SlackToken:     cfg.Slack.Token,
		PublicURL:      cfg.PublicURL,
		Lang:           services.SlackLanguage(cfg.Slack.Lang),
		IdempotencyTTL: cfg.IdempotencyTTL,
	}
	boardSvc := &services.BoardService{DB: db, IdempotencyTTL: cfg.IdempotencyTTL}
	uploadSvc := &services.UploadService{Relay: relay}
	h := handlers.New(msgSvc, boardSvc, uploadSvc)

	compress := gzip.Gzip(gzip.DefaultCompression)

	meta := r.Group("", compress)
	{
		meta.GET("/", h.Root)
		meta.GET("/health", h.Health)
		if cfg.SwaggerEnabled {
			meta.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		}
	}
	r.Static("/uploads", cfg.UploadDir)

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	idem := middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, idempotencyLookup(db))
	write := []gin.HandlerFunc{idem, rl.Handler()}

	board := r.Group("", compress, middleware.LimitBody(cfg.MaxBodyBytes), middleware.FormBody(cfg.MaxBodyBytes))
	{
		board.GET("/messages", h.ListMessages)
		board.POST("/messages", append(write, h.PostMessage)...)
		board.POST("/messages/slack", rl.Handler(), h.PostSlack)
		board.DELETE("/messages/:id", h.DeleteMessage)

		board.GET("/replies", h.ListReplies)
		board.POST("/replies", append(write, h.PostReply)...)
		board.DELETE("/replies/:id", h.DeleteReply)

		board.GET("/marquees", h.ListMarquees)
		board.POST("/marquees", append(write, h.PostMarquee)...)
		board.DELETE("/marquees/:id", h.DeleteMarquee)

		board.GET("/placeholders", h.ListPlaceholders)
		board.POST("/placeholders", append(write, h.PostPlaceholder)...)
		board.DELETE("/placeholders/:id", h.DeletePlaceholder)
	}

	up := r.Group("", middleware.LimitBody(cfg.MaxUploadBytes), rl.Handler())
	{
		up.POST("/imgupload", middleware.SingleFile("image", cfg.UploadDir), h.Upload(imgur.KindImage))
		up.POST("/gifupload", middleware.SingleFile("image", cfg.UploadDir), h.Upload(imgur.KindGIF))
		up.POST("/videoupload", middleware.SingleFile("video", cfg.UploadDir), h.Upload(imgur.KindVideo))
		up.DELETE("/imgur/:deletehash", h.DeleteUpload)
	}
}

// idempotencyLookup reports whether (scope, key) still has a live record.
// Store errors count as a miss; the service decides again inside its
// transaction.
func idempotencyLookup(db *gorm.DB) middleware.IdempotencyLookup {
	return func(ctx context.Context, scope, key string, now time.Time) (bool, error) {
		rec, err := repo.GetIdempotency(ctx, db, scope, key, now)
		if err != nil || rec == nil {
			return false, nil
		}
		return true, nil
	}
}

// corsMiddleware allows exactly the configured front-end origin with
// credentials, or every origin without credentials when none is set.
func corsMiddleware(cc config.CORSConfig) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", middleware.HeaderIdempotencyKey},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length", "ETag", handlers.HeaderReplayed},
		MaxAge:        12 * time.Hour,
	}
	if cc.Origin == "" {
		base.AllowAllOrigins = true
		// Force ACAO: * even for requests without an Origin header (health checks, curl).
		force := func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		}
		return []gin.HandlerFunc{force, cors.New(base)}
	}
	base.AllowOrigins = []string{cc.Origin}
	base.AllowCredentials = true
	return []gin.HandlerFunc{cors.New(base)}
}
