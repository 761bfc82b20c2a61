package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted in WEATHER_PROVIDER.
const (
	ProviderMock        = "mock"
	ProviderOpenWeather = "openweather"
	ProviderOpenMeteo   = "openmeteo"
)

const defaultCacheTTLSeconds = 600

type AppConfig struct {
	Port string

	// Upstream weather API.
	WeatherProvider string
	WeatherAPIBase  string
	WeatherAPIKey   string
	HTTPTimeout     time.Duration
	// FetchTimeout bounds one provider call including retries.
	FetchTimeout time.Duration

	// CacheTTL applies to every cached weather response.
	CacheTTL time.Duration
	// CacheSweepInterval enables a periodic purge of expired entries (0 = disabled).
	CacheSweepInterval time.Duration

	DefaultLocale string
	LogLevel      string
}

// Load reads configuration from environment with sensible defaults.
// The caller is expected to have loaded any .env file beforehand.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.WeatherAPIBase = getenvDefault("WEATHER_API_BASE", "https://api.openweathermap.org/data/3.0")
	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")

	// Without an explicit choice, use OpenWeather when a key is present.
	provider := strings.ToLower(os.Getenv("WEATHER_PROVIDER"))
	if provider == "" {
		provider = ProviderMock
		if cfg.WeatherAPIKey != "" {
			provider = ProviderOpenWeather
		}
	}
	switch provider {
	case ProviderMock, ProviderOpenWeather, ProviderOpenMeteo:
	default:
		return nil, fmt.Errorf("invalid WEATHER_PROVIDER: %q", provider)
	}
	if provider == ProviderOpenWeather && cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WEATHER_API_KEY is required for provider %q", provider)
	}
	cfg.WeatherProvider = provider

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	fetchTimeout, err := time.ParseDuration(getenvDefault("WEATHER_FETCH_TIMEOUT", "8s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_FETCH_TIMEOUT: %w", err)
	}
	if fetchTimeout <= 0 {
		return nil, fmt.Errorf("invalid WEATHER_FETCH_TIMEOUT: must be positive")
	}
	cfg.FetchTimeout = fetchTimeout

	cfg.CacheTTL = time.Duration(getenvInt("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)) * time.Second

	sweep, err := time.ParseDuration(getenvDefault("CACHE_SWEEP_INTERVAL", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SWEEP_INTERVAL: %w", err)
	}
	if sweep < 0 {
		return nil, fmt.Errorf("invalid CACHE_SWEEP_INTERVAL: must not be negative")
	}
	cfg.CacheSweepInterval = sweep

	cfg.DefaultLocale = getenvDefault("DEFAULT_LOCALE", "ko")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
