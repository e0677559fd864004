package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"tipcast.app/frames/common/id"
	"tipcast.app/frames/common/logger"
	"tipcast.app/frames/common/otel"
	"tipcast.app/frames/core/config"
	"tipcast.app/frames/core/db"
	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/http/middleware"
	httprouter "tipcast.app/frames/internal/http/router"
	"tipcast.app/frames/internal/service"
	"tipcast.app/frames/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "frames server starting", "env", cfg.Env, "base_url", cfg.BaseURL)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected")

	var verifier service.Verifier
	if cfg.Hub.Enabled() {
		verifier = service.NewHubVerifier(cfg.Hub)
		slog.InfoContext(ctx, "hub verification enabled", "url", cfg.Hub.VerifyURL)
	} else {
		verifier = service.NewNoopVerifier()
		slog.WarnContext(ctx, "hub verification disabled; interaction messages trusted as delivered")
	}

	services := service.NewServices(service.ServicesConfig{
		Stores: store.NewStores(database.Pool()),
		Redis:  redisClient,
		Template: frame.TemplateConfig{
			BaseURL:    cfg.BaseURL,
			LinkOutURL: cfg.LinkOutURL,
			Registry:   chain.Default(),
		},
		Registry:       chain.Default(),
		Verifier:       verifier,
		LeaderboardTTL: cfg.Redis.LeaderboardTTL,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger
	// logs with trace context → Metrics observes final status
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	httprouter.SetupRoutes(router, services, httprouter.NewLimiters(cfg.RateLimits))

	return router
}

const banner = `
████████╗██╗██████╗  ██████╗ █████╗ ███████╗████████╗
╚══██╔══╝██║██╔══██╗██╔════╝██╔══██╗██╔════╝╚══██╔══╝
   ██║   ██║██████╔╝██║     ███████║███████╗   ██║
   ██║   ██║██╔═══╝ ██║     ██╔══██║╚════██║   ██║
   ██║   ██║██║     ╚██████╗██║  ██║███████║   ██║
   ╚═╝   ╚═╝╚═╝      ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝
`
