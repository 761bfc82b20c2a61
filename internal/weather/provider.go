package weather

import "context"

// Provider abstracts an upstream weather source (OpenWeather One Call, or the built-in mock).
type Provider interface {
	Name() string
	Current(ctx context.Context, q Query) (CurrentWeather, error)
	Hourly(ctx context.Context, q Query, hours int) ([]HourlyItem, error)
	Daily(ctx context.Context, q Query, days int) ([]DailyItem, error)
}
