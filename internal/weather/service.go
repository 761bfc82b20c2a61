package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/i474232898/weather-dashboard/internal/cache"
	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/region"
)

// Forecast bounds accepted by Hourly and Daily; out-of-range counts are clamped.
const (
	DefaultHours = 24
	MaxHours     = 48
	DefaultDays  = 7
	MaxDays      = 7
)

// DefaultFetchTimeout bounds a provider call when ServiceConfig.FetchTimeout is unset.
const DefaultFetchTimeout = 8 * time.Second

// Logical paths used to derive cache keys.
const (
	PathCurrent = "/api/weather/current"
	PathHourly  = "/api/weather/hourly"
	PathDaily   = "/api/weather/daily"
)

var (
	// ErrUpstream wraps any failure reported by the weather provider.
	ErrUpstream = errors.New("weather provider request failed")
)

// ServiceConfig holds the tunables of a Service.
type ServiceConfig struct {
	// TTL applied to every cached response.
	TTL time.Duration
	// DefaultLang is used when a query has no language.
	DefaultLang string
	// FetchTimeout bounds each provider call, retries included.
	FetchTimeout time.Duration
	Logger       *zap.Logger
}

// Service answers weather queries from the response cache, falling back to the provider on a miss.
type Service struct {
	provider  Provider
	regions   *region.Index
	responses *cache.MemoryCache[Response]
	group     singleflight.Group

	ttl          time.Duration
	fetchTimeout time.Duration
	defaultLang  string
	logger       *zap.Logger
	now          func() time.Time
}

// NewService creates a new Service.
func NewService(provider Provider, regions *region.Index, responses *cache.MemoryCache[Response], cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &Service{
		provider:     provider,
		regions:      regions,
		responses:    responses,
		ttl:          cfg.TTL,
		fetchTimeout: fetchTimeout,
		defaultLang:  cfg.DefaultLang,
		logger:       logger,
		now:          time.Now,
	}
}

// Current returns the present conditions for q.
func (s *Service) Current(ctx context.Context, q Query) (Response, error) {
	q = s.normalize(q)
	return s.cached(ctx, PathCurrent, s.params(q, "", 0), q, func(ctx context.Context) (any, error) {
		return s.provider.Current(ctx, q)
	})
}

// Hourly returns an hourly forecast. hours is clamped to [1, MaxHours].
func (s *Service) Hourly(ctx context.Context, q Query, hours int) (Response, error) {
	q = s.normalize(q)
	hours = common.Clamp(hours, 1, MaxHours)
	return s.cached(ctx, PathHourly, s.params(q, "hours", hours), q, func(ctx context.Context) (any, error) {
		return s.provider.Hourly(ctx, q, hours)
	})
}

// Daily returns a daily forecast. days is clamped to [1, MaxDays].
func (s *Service) Daily(ctx context.Context, q Query, days int) (Response, error) {
	q = s.normalize(q)
	days = common.Clamp(days, 1, MaxDays)
	return s.cached(ctx, PathDaily, s.params(q, "days", days), q, func(ctx context.Context) (any, error) {
		return s.provider.Daily(ctx, q, days)
	})
}

// ClearCache drops every cached response.
func (s *Service) ClearCache() {
	s.responses.Clear()
	s.logger.Info("response cache cleared")
}

func (s *Service) normalize(q Query) Query {
	if q.Units == "" {
		q.Units = UnitsMetric
	}
	if q.Lang == "" {
		q.Lang = s.defaultLang
	}
	return q
}

func (s *Service) params(q Query, countName string, count int) map[string]any {
	p := map[string]any{
		"lat":   q.Coordinates.Lat,
		"lon":   q.Coordinates.Lon,
		"units": string(q.Units),
		"lang":  q.Lang,
	}
	if countName != "" {
		p[countName] = count
	}
	return p
}

// cached serves key from the cache or computes it with fetch. Concurrent
// misses on the same key share a single provider call, which is detached from
// the caller's cancellation and bounded by fetchTimeout. Errors are not cached.
func (s *Service) cached(
	ctx context.Context,
	path string,
	params map[string]any,
	q Query,
	fetch func(ctx context.Context) (any, error),
) (Response, error) {
	key := cache.BuildKey(path, params)
	if resp, ok := s.responses.Get(key); ok {
		s.logger.Debug("cache hit", zap.String("key", key))
		return resp, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		if resp, ok := s.responses.Get(key); ok {
			return resp, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		data, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		resp := Response{
			Location:  s.locate(q.Coordinates),
			UpdatedAt: s.now().UTC(),
			Data:      data,
		}
		s.responses.Set(key, resp, s.ttl)
		return resp, nil
	})
	if err != nil {
		s.logger.Warn("provider request failed",
			zap.String("provider", s.provider.Name()),
			zap.String("key", key),
			zap.Error(err),
		)
		return Response{}, fmt.Errorf("%w: %s: %w", ErrUpstream, s.provider.Name(), err)
	}

	s.logger.Debug("cache miss", zap.String("key", key), zap.Bool("shared", shared))
	return v.(Response), nil
}

func (s *Service) locate(c region.Coordinates) ResponseLocation {
	nearest := s.regions.FindNearest(c)
	return ResponseLocation{
		Name: nearest.Name,
		Lat:  c.Lat,
		Lon:  c.Lon,
	}
}
