package config

import (
	"testing"
	"time"
)

var allVars = []string{
	"PORT", "WEATHER_PROVIDER", "WEATHER_API_BASE", "WEATHER_API_KEY", "HTTP_TIMEOUT", "WEATHER_FETCH_TIMEOUT",
	"CACHE_TTL_SECONDS", "CACHE_SWEEP_INTERVAL", "DEFAULT_LOCALE", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.WeatherProvider != ProviderMock {
		t.Errorf("WeatherProvider = %q, want mock", cfg.WeatherProvider)
	}
	if cfg.CacheTTL != 600*time.Second {
		t.Errorf("CacheTTL = %s, want 10m", cfg.CacheTTL)
	}
	if cfg.CacheSweepInterval != 0 {
		t.Errorf("CacheSweepInterval = %s, want 0", cfg.CacheSweepInterval)
	}
	if cfg.DefaultLocale != "ko" || cfg.LogLevel != "info" {
		t.Errorf("DefaultLocale/LogLevel = %q/%q", cfg.DefaultLocale, cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.FetchTimeout != 8*time.Second {
		t.Errorf("FetchTimeout = %s, want 8s", cfg.FetchTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("CACHE_SWEEP_INTERVAL", "5m")
	t.Setenv("DEFAULT_LOCALE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WeatherProvider != ProviderOpenWeather {
		t.Errorf("WeatherProvider = %q, want openweather when a key is set", cfg.WeatherProvider)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %s", cfg.CacheTTL)
	}
	if cfg.CacheSweepInterval != 5*time.Minute {
		t.Errorf("CacheSweepInterval = %s", cfg.CacheSweepInterval)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q", cfg.DefaultLocale)
	}
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL_SECONDS", "ten")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CacheTTL != 600*time.Second {
		t.Errorf("CacheTTL = %s, want default", cfg.CacheTTL)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown provider", map[string]string{"WEATHER_PROVIDER": "acme"}},
		{"openweather without key", map[string]string{"WEATHER_PROVIDER": "openweather"}},
		{"bad timeout", map[string]string{"HTTP_TIMEOUT": "soon"}},
		{"bad sweep", map[string]string{"CACHE_SWEEP_INTERVAL": "often"}},
		{"negative sweep", map[string]string{"CACHE_SWEEP_INTERVAL": "-1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_FetchTimeout(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"3s", 3 * time.Second, false},
		{"soon", 0, true},
		{"0s", 0, true},
		{"-1s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("WEATHER_FETCH_TIMEOUT", tt.value)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.FetchTimeout != tt.want {
				t.Errorf("FetchTimeout = %s, want %s", cfg.FetchTimeout, tt.want)
			}
		})
	}
}
