package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront_orders/internal/adapter/http/handlers"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/adapter/http/routes"
	"storefront_orders/internal/bootstrap"
	"storefront_orders/internal/config"
	"storefront_orders/internal/infrastructure/telemetry"
	"storefront_orders/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Storefront Orders API
// @version         1.0
// @description     Checkout, payments, reconciliation and exchanges for the storefront.

// @BasePath  /

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID

func main() {
	if err := run(); err != nil {
		logger.Error("[main] service stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run() error {
	cfg, err := config.Load(os.Getenv("ORDERS_CONFIG"))
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}, cfg.App.Env); err != nil {
		return err
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, telemetry.Options{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		Environment: cfg.App.Env,
	})
	if err != nil {
		return err
	}

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("[main] closing dependencies failed", zap.Error(err))
		}
	}()

	checks := map[string]handlers.HealthCheck{"store": app.Store.Ping}
	if ping := app.RedisPing(); ping != nil {
		checks["redis"] = ping
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit.Rate, cfg.Server.RateLimit.Burst)
	}

	hs := routes.Handlers{
		Orders:    handlers.NewOrderHandler(app.Orders, app.Reconciliation),
		Exchanges: handlers.NewExchangeHandler(app.Exchanges),
		Cards:     handlers.NewCardHandler(app.Cards),
		Webhooks:  handlers.NewWebhookHandler(app.Reconciliation),
		Catalog:   handlers.NewCatalogHandler(app.TopSellers),
		Health:    handlers.NewHealthHandler(cfg.App.Version, checks),
	}
	if app.Gateway != nil && app.Gateway.Mock() != nil {
		hs.Sandbox = handlers.NewSandboxHandler(app.Gateway.Mock())
	}

	router := routes.NewRouter(hs, routes.Options{
		ServiceName: cfg.App.Name,
		Tracing:     cfg.Telemetry.Enabled,
		RateLimiter: limiter,
		Swagger:     cfg.IsDevelopment(),
	})

	background := app.RunBackground(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[main] http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("[main] shutdown requested")
	case err := <-serveErr:
		if err != nil {
			stop()
			<-background
			return err
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("[main] http shutdown incomplete", zap.Error(err))
	}
	select {
	case <-background:
	case <-shutdownCtx.Done():
		logger.Warn("[main] background loops did not stop in time")
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Warn("[main] tracer shutdown failed", zap.Error(err))
	}
	logger.Info("[main] bye", zap.Duration("grace", cfg.Server.ShutdownTimeout.Round(time.Second)))
	return nil
}
