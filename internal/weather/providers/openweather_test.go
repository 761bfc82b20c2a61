package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/region"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var fastBackoff = BackoffConfig{
	MaxRetries:      2,
	InitialInterval: time.Millisecond,
	MaxInterval:     2 * time.Millisecond,
}

const oneCallBody = `{
  "current": {"dt": 1717236000, "temp": 21.3, "feels_like": 21.0, "pressure": 1009,
    "humidity": 70, "visibility": 9000, "wind_speed": 3.4, "wind_deg": 200,
    "weather": [{"main": "Clouds", "description": "구름 조금", "icon": "02d"}]},
  "hourly": [
    {"dt": 1717236000, "temp": 21.3, "pop": 0.1, "weather": [{"main": "Clouds", "icon": "02d"}]},
    {"dt": 1717239600, "temp": 22.0, "pop": 0.2, "weather": [{"main": "Rain", "icon": "10d"}]},
    {"dt": 1717243200, "temp": 22.5, "pop": 0.3, "weather": []}
  ],
  "daily": [
    {"dt": 1717210800, "sunrise": 1717186500, "sunset": 1717239000,
     "temp": {"min": 16.1, "max": 26.4}, "humidity": 55, "pop": 0.4,
     "weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}]}
  ]
}`

func newTestOpenWeather(t *testing.T, handler http.HandlerFunc) *OpenWeatherProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewOpenWeatherProvider(srv.Client(), srv.URL, "test-key")
	p.http.backoff = fastBackoff
	return p
}

func seoulQuery() weather.Query {
	return weather.Query{
		Coordinates: region.Coordinates{Lat: 37.5665, Lon: 126.978},
		Units:       weather.UnitsMetric,
		Lang:        "ko",
	}
}

func TestOpenWeather_Current(t *testing.T) {
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/onecall" {
			t.Errorf("path = %s, want /onecall", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("lat") != "37.5665" || q.Get("lon") != "126.978" {
			t.Errorf("coordinates = %s,%s", q.Get("lat"), q.Get("lon"))
		}
		if q.Get("appid") != "test-key" || q.Get("units") != "metric" || q.Get("lang") != "ko" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("exclude") != "minutely,hourly,daily,alerts" {
			t.Errorf("exclude = %s", q.Get("exclude"))
		}
		_, _ = w.Write([]byte(oneCallBody))
	})

	cur, err := p.Current(context.Background(), seoulQuery())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur.Temp != 21.3 || cur.Condition != "구름 조금" || cur.Icon != "02d" || cur.WindDeg != 200 {
		t.Errorf("unexpected reading: %+v", cur)
	}
	if !cur.UpdatedAt.Equal(time.Unix(1717236000, 0)) {
		t.Errorf("UpdatedAt = %s", cur.UpdatedAt)
	}
}

func TestOpenWeather_HourlyAndDaily(t *testing.T) {
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(oneCallBody))
	})
	ctx := context.Background()

	hourly, err := p.Hourly(ctx, seoulQuery(), 2)
	if err != nil {
		t.Fatalf("Hourly: %v", err)
	}
	if len(hourly) != 2 {
		t.Fatalf("len(hourly) = %d, want 2", len(hourly))
	}
	if hourly[1].Condition != "Rain" || hourly[1].Pop != 0.2 {
		t.Errorf("hourly[1] = %+v", hourly[1])
	}

	daily, err := p.Daily(ctx, seoulQuery(), 7)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if len(daily) != 1 {
		t.Fatalf("len(daily) = %d, want 1", len(daily))
	}
	if daily[0].Date != "2024-06-01" || daily[0].Min != 16.1 || daily[0].Condition != "clear sky" {
		t.Errorf("daily[0] = %+v", daily[0])
	}
}

func TestOpenWeather_MissingKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "", "")
	if _, err := p.Current(context.Background(), seoulQuery()); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestOpenWeather_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(oneCallBody))
	})

	if _, err := p.Current(context.Background(), seoulQuery()); err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestOpenWeather_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := p.Current(context.Background(), seoulQuery())
	if !errors.Is(err, errUnexpected) {
		t.Fatalf("err = %v, want errUnexpected", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestOpenWeather_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := p.Current(context.Background(), seoulQuery())
	if !errors.Is(err, errRateLimited) {
		t.Fatalf("err = %v, want errRateLimited", err)
	}
	if got := calls.Load(); got != int32(fastBackoff.MaxRetries+1) {
		t.Errorf("calls = %d, want %d", got, fastBackoff.MaxRetries+1)
	}
}
