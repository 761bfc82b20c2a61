package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/cache"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/logging"
	"github.com/i474232898/weather-dashboard/internal/region"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	var provider weather.Provider
	switch cfg.WeatherProvider {
	case config.ProviderOpenWeather:
		provider = providers.NewOpenWeatherProvider(httpClient, cfg.WeatherAPIBase, cfg.WeatherAPIKey)
	case config.ProviderOpenMeteo:
		provider = providers.NewOpenMeteoProvider(httpClient)
	default:
		provider = providers.NewMockProvider(uint64(time.Now().UnixNano()))
	}

	regions := region.DefaultIndex()
	responses := cache.NewMemoryCache[weather.Response]()

	service := weather.NewService(provider, regions, responses, weather.ServiceConfig{
		TTL:          cfg.CacheTTL,
		DefaultLang:  cfg.DefaultLocale,
		FetchTimeout: cfg.FetchTimeout,
		Logger:       zl,
	})

	// Optional purge of expired responses; lazy expiry still applies.
	sched := scheduler.New(responses, cfg.CacheSweepInterval, zl)
	if err := sched.Start(); err != nil {
		zl.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := httpapi.NewApp(zl, logger.New())
	httpapi.RegisterRoutes(app, service, regions)

	go func() {
		zl.Info("listening",
			zap.String("port", cfg.Port),
			zap.String("provider", provider.Name()),
			zap.Duration("cacheTTL", cfg.CacheTTL),
		)
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Error("fiber server stopped", zap.Error(err))
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Error("error during shutdown", zap.Error(err))
	}
}
