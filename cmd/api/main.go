package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mercadoviva/shipping-backend/api/routes"
	"github.com/mercadoviva/shipping-backend/internal/shipping"
	"github.com/mercadoviva/shipping-backend/pkg/cache"
	"github.com/mercadoviva/shipping-backend/pkg/config"
	"github.com/mercadoviva/shipping-backend/pkg/db"
	"github.com/mercadoviva/shipping-backend/pkg/logger"
	"github.com/mercadoviva/shipping-backend/pkg/metrics"
	"github.com/mercadoviva/shipping-backend/pkg/migrate"
	"github.com/mercadoviva/shipping-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	quoteCache, err := cache.NewRedis(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote cache", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	shippingService, err := shipping.NewService(
		shipping.NewRepository(dbClient.DB()),
		shipping.NewCalculator(cfg.Shipping),
		quoteCache,
		quoteMetrics,
		logg,
		cfg.Shipping,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create shipping service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, shippingService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
