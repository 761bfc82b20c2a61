package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultOpenWeatherBase is the One Call 3.0 API root.
const DefaultOpenWeatherBase = "https://api.openweathermap.org/data/3.0"

// OpenWeatherProvider implements weather.Provider on top of the OpenWeather One Call API.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	http    *resilientClient
}

func NewOpenWeatherProvider(client *http.Client, baseURL, apiKey string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBase
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newResilientClient("openweather", client, DefaultBackoff),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type owCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type oneCallPayload struct {
	Current struct {
		Dt         int64         `json:"dt"`
		Temp       float64       `json:"temp"`
		FeelsLike  float64       `json:"feels_like"`
		Pressure   float64       `json:"pressure"`
		Humidity   float64       `json:"humidity"`
		Visibility float64       `json:"visibility"`
		WindSpeed  float64       `json:"wind_speed"`
		WindDeg    float64       `json:"wind_deg"`
		Weather    []owCondition `json:"weather"`
	} `json:"current"`
	Hourly []struct {
		Dt      int64         `json:"dt"`
		Temp    float64       `json:"temp"`
		Pop     float64       `json:"pop"`
		Weather []owCondition `json:"weather"`
	} `json:"hourly"`
	Daily []struct {
		Dt      int64 `json:"dt"`
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
		Temp    struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		Humidity float64       `json:"humidity"`
		Pop      float64       `json:"pop"`
		Weather  []owCondition `json:"weather"`
	} `json:"daily"`
}

func (p *OpenWeatherProvider) Current(ctx context.Context, q weather.Query) (weather.CurrentWeather, error) {
	var payload oneCallPayload
	if err := p.fetch(ctx, q, "minutely,hourly,daily,alerts", &payload); err != nil {
		return weather.CurrentWeather{}, err
	}

	cur := payload.Current
	cond, icon := firstCondition(cur.Weather)
	return weather.CurrentWeather{
		Temp:       cur.Temp,
		FeelsLike:  cur.FeelsLike,
		Humidity:   cur.Humidity,
		WindSpeed:  cur.WindSpeed,
		WindDeg:    cur.WindDeg,
		Condition:  cond,
		Icon:       icon,
		Pressure:   cur.Pressure,
		Visibility: cur.Visibility,
		UpdatedAt:  unixUTC(cur.Dt),
	}, nil
}

func (p *OpenWeatherProvider) Hourly(ctx context.Context, q weather.Query, hours int) ([]weather.HourlyItem, error) {
	var payload oneCallPayload
	if err := p.fetch(ctx, q, "minutely,current,daily,alerts", &payload); err != nil {
		return nil, err
	}

	items := make([]weather.HourlyItem, 0, hours)
	for _, h := range payload.Hourly {
		if len(items) >= hours {
			break
		}
		cond, icon := firstCondition(h.Weather)
		items = append(items, weather.HourlyItem{
			Time:      unixUTC(h.Dt),
			Temp:      h.Temp,
			Pop:       h.Pop,
			Icon:      icon,
			Condition: cond,
		})
	}
	return items, nil
}

func (p *OpenWeatherProvider) Daily(ctx context.Context, q weather.Query, days int) ([]weather.DailyItem, error) {
	var payload oneCallPayload
	if err := p.fetch(ctx, q, "minutely,current,hourly,alerts", &payload); err != nil {
		return nil, err
	}

	items := make([]weather.DailyItem, 0, days)
	for _, d := range payload.Daily {
		if len(items) >= days {
			break
		}
		cond, icon := firstCondition(d.Weather)
		items = append(items, weather.DailyItem{
			Date:      unixUTC(d.Dt).Format("2006-01-02"),
			Min:       d.Temp.Min,
			Max:       d.Temp.Max,
			Pop:       d.Pop,
			Icon:      icon,
			Condition: cond,
			Sunrise:   unixUTC(d.Sunrise),
			Sunset:    unixUTC(d.Sunset),
			Humidity:  d.Humidity,
		})
	}
	return items, nil
}

func (p *OpenWeatherProvider) fetch(ctx context.Context, q weather.Query, exclude string, out *oneCallPayload) error {
	if p.apiKey == "" {
		return fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(q.Coordinates.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(q.Coordinates.Lon, 'f', -1, 64))
	values.Set("units", string(q.Units))
	if q.Lang != "" {
		values.Set("lang", q.Lang)
	}
	values.Set("exclude", exclude)
	values.Set("appid", p.apiKey)

	u := fmt.Sprintf("%s/onecall?%s", p.baseURL, values.Encode())
	return p.http.getJSON(ctx, u, out)
}

func firstCondition(items []owCondition) (condition, icon string) {
	if len(items) == 0 {
		return "", ""
	}
	condition = items[0].Description
	if condition == "" {
		condition = items[0].Main
	}
	return condition, items[0].Icon
}

func unixUTC(sec int64) time.Time {
	if sec == 0 {
		return time.Now().UTC()
	}
	return time.Unix(sec, 0).UTC()
}

var _ weather.Provider = (*OpenWeatherProvider)(nil)
