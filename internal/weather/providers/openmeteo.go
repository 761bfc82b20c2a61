package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// OpenMeteoProvider implements weather.Provider for Open-Meteo. It needs no API key.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	http    *resilientClient
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		http:    newResilientClient("openmeteo", client, DefaultBackoff),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Current(ctx context.Context, q weather.Query) (weather.CurrentWeather, error) {
	values := p.baseValues(q)
	values.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,wind_direction_10m,surface_pressure,weather_code,is_day")

	var payload struct {
		Current struct {
			Time        int64   `json:"time"`
			Temperature float64 `json:"temperature_2m"`
			Apparent    float64 `json:"apparent_temperature"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WindSpeed   float64 `json:"wind_speed_10m"`
			WindDir     float64 `json:"wind_direction_10m"`
			Pressure    float64 `json:"surface_pressure"`
			WeatherCode int     `json:"weather_code"`
			IsDay       int     `json:"is_day"`
		} `json:"current"`
	}
	if err := p.http.getJSON(ctx, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.CurrentWeather{}, err
	}

	cur := payload.Current
	return weather.CurrentWeather{
		Temp:      cur.Temperature,
		FeelsLike: cur.Apparent,
		Humidity:  cur.Humidity,
		WindSpeed: cur.WindSpeed,
		WindDeg:   cur.WindDir,
		Condition: mapOpenMeteoCondition(cur.WeatherCode),
		Icon:      openMeteoIcon(cur.WeatherCode, cur.IsDay == 1),
		Pressure:  cur.Pressure,
		UpdatedAt: unixUTC(cur.Time),
	}, nil
}

func (p *OpenMeteoProvider) Hourly(ctx context.Context, q weather.Query, hours int) ([]weather.HourlyItem, error) {
	values := p.baseValues(q)
	values.Set("hourly", "temperature_2m,precipitation_probability,weather_code")
	values.Set("forecast_hours", strconv.Itoa(hours))

	var payload struct {
		Hourly struct {
			Time        []int64   `json:"time"`
			Temperature []float64 `json:"temperature_2m"`
			PrecipProb  []float64 `json:"precipitation_probability"`
			WeatherCode []int     `json:"weather_code"`
		} `json:"hourly"`
	}
	if err := p.http.getJSON(ctx, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return nil, err
	}

	h := payload.Hourly
	n := min(hours, len(h.Time), len(h.Temperature), len(h.PrecipProb), len(h.WeatherCode))
	items := make([]weather.HourlyItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, weather.HourlyItem{
			Time:      unixUTC(h.Time[i]),
			Temp:      h.Temperature[i],
			Pop:       h.PrecipProb[i] / 100,
			Icon:      openMeteoIcon(h.WeatherCode[i], true),
			Condition: mapOpenMeteoCondition(h.WeatherCode[i]),
		})
	}
	return items, nil
}

func (p *OpenMeteoProvider) Daily(ctx context.Context, q weather.Query, days int) ([]weather.DailyItem, error) {
	values := p.baseValues(q)
	values.Set("daily", "temperature_2m_min,temperature_2m_max,precipitation_probability_max,weather_code,sunrise,sunset,relative_humidity_2m_mean")
	values.Set("forecast_days", strconv.Itoa(days))

	var payload struct {
		Daily struct {
			Time        []int64   `json:"time"`
			Min         []float64 `json:"temperature_2m_min"`
			Max         []float64 `json:"temperature_2m_max"`
			PrecipProb  []float64 `json:"precipitation_probability_max"`
			WeatherCode []int     `json:"weather_code"`
			Sunrise     []int64   `json:"sunrise"`
			Sunset      []int64   `json:"sunset"`
			Humidity    []float64 `json:"relative_humidity_2m_mean"`
		} `json:"daily"`
	}
	if err := p.http.getJSON(ctx, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return nil, err
	}

	d := payload.Daily
	n := min(days, len(d.Time), len(d.Min), len(d.Max), len(d.PrecipProb),
		len(d.WeatherCode), len(d.Sunrise), len(d.Sunset), len(d.Humidity))
	items := make([]weather.DailyItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, weather.DailyItem{
			Date:      unixUTC(d.Time[i]).Format("2006-01-02"),
			Min:       d.Min[i],
			Max:       d.Max[i],
			Pop:       d.PrecipProb[i] / 100,
			Icon:      openMeteoIcon(d.WeatherCode[i], true),
			Condition: mapOpenMeteoCondition(d.WeatherCode[i]),
			Sunrise:   unixUTC(d.Sunrise[i]),
			Sunset:    unixUTC(d.Sunset[i]),
			Humidity:  d.Humidity[i],
		})
	}
	return items, nil
}

func (p *OpenMeteoProvider) baseValues(q weather.Query) url.Values {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", q.Coordinates.Lat))
	values.Set("longitude", fmt.Sprintf("%f", q.Coordinates.Lon))
	values.Set("timezone", "UTC")
	values.Set("timeformat", "unixtime")
	if q.Units == weather.UnitsImperial {
		values.Set("temperature_unit", "fahrenheit")
		values.Set("wind_speed_unit", "mph")
	} else {
		values.Set("wind_speed_unit", "ms")
	}
	return values
}

func mapOpenMeteoCondition(code int) string {
	// Mapping based on WMO weather codes (simplified).
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Clouds"
	case code == 45 || code == 48:
		return "Mist"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

// openMeteoIcon translates a WMO code into the OpenWeather icon set used by the dashboard.
func openMeteoIcon(code int, day bool) string {
	var base string
	switch {
	case code == 0:
		base = "01"
	case code == 1:
		base = "02"
	case code == 2:
		base = "03"
	case code == 3:
		base = "04"
	case code == 45 || code == 48:
		base = "50"
	case code >= 51 && code <= 67:
		base = "10"
	case code >= 80 && code <= 82:
		base = "09"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		base = "13"
	case code >= 95:
		base = "11"
	default:
		base = "03"
	}
	if day {
		return base + "d"
	}
	return base + "n"
}

var _ weather.Provider = (*OpenMeteoProvider)(nil)
