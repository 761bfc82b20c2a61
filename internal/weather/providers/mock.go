package providers

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var (
	mockIcons        = []string{"01d", "02d", "03d", "04d", "10d"}
	mockConditionsKo = []string{"맑음", "구름 조금", "구름 많음", "흐림", "비"}
	mockConditionsEn = []string{"Clear", "Few clouds", "Scattered clouds", "Overcast", "Rain"}
)

// MockProvider returns synthetic weather so the dashboard works without an API key.
// Current conditions are fixed; forecasts are random within plausible ranges.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMockProvider creates a MockProvider. The seed makes forecasts reproducible.
func NewMockProvider(seed uint64) *MockProvider {
	return &MockProvider{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) Current(ctx context.Context, q weather.Query) (weather.CurrentWeather, error) {
	if err := ctx.Err(); err != nil {
		return weather.CurrentWeather{}, err
	}

	cur := weather.CurrentWeather{
		Temp:       22.5,
		FeelsLike:  23.1,
		Humidity:   65,
		WindSpeed:  2.1,
		WindDeg:    120,
		Condition:  "Clear",
		Icon:       "01d",
		Pressure:   1012,
		Visibility: 10000,
		UpdatedAt:  p.now().UTC(),
	}
	if q.Units == weather.UnitsImperial {
		cur.Temp = celsiusToFahrenheit(cur.Temp)
		cur.FeelsLike = celsiusToFahrenheit(cur.FeelsLike)
		cur.WindSpeed = msToMph(cur.WindSpeed)
	}
	return cur, nil
}

func (p *MockProvider) Hourly(ctx context.Context, q weather.Query, hours int) ([]weather.HourlyItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	start := p.now().UTC()
	items := make([]weather.HourlyItem, 0, hours)
	for i := 0; i < hours; i++ {
		temp := 20 + p.rng.Float64()*10
		if q.Units == weather.UnitsImperial {
			temp = celsiusToFahrenheit(temp)
		}
		pick := p.rng.IntN(len(mockIcons))
		items = append(items, weather.HourlyItem{
			Time:      start.Add(time.Duration(i) * time.Hour),
			Temp:      temp,
			Pop:       p.rng.Float64() * 0.5,
			Icon:      mockIcons[pick],
			Condition: mockCondition(q.Lang, pick),
		})
	}
	return items, nil
}

func (p *MockProvider) Daily(ctx context.Context, q weather.Query, days int) ([]weather.DailyItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	today := p.now().UTC()
	items := make([]weather.DailyItem, 0, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		minTemp := 15 + p.rng.Float64()*5
		maxTemp := 25 + p.rng.Float64()*5
		if q.Units == weather.UnitsImperial {
			minTemp = celsiusToFahrenheit(minTemp)
			maxTemp = celsiusToFahrenheit(maxTemp)
		}

		pick := p.rng.IntN(len(mockIcons))
		items = append(items, weather.DailyItem{
			Date:      day.Format("2006-01-02"),
			Min:       minTemp,
			Max:       maxTemp,
			Pop:       p.rng.Float64() * 0.7,
			Icon:      mockIcons[pick],
			Condition: mockCondition(q.Lang, pick),
			Sunrise:   midnight.Add(6*time.Hour + time.Duration(p.rng.IntN(30))*time.Minute),
			Sunset:    midnight.Add(19*time.Hour + time.Duration(p.rng.IntN(30))*time.Minute),
			Humidity:  float64(40 + p.rng.IntN(40)),
		})
	}
	return items, nil
}

func mockCondition(lang string, i int) string {
	if lang == "ko" {
		return mockConditionsKo[i]
	}
	return mockConditionsEn[i]
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func msToMph(ms float64) float64 {
	return ms * 2.23694
}

var _ weather.Provider = (*MockProvider)(nil)
