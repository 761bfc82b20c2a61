package weather

import (
	"time"

	"github.com/i474232898/weather-dashboard/internal/region"
)

// UnitSystem selects the measurement units reported by providers.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// Query identifies a weather request.
type Query struct {
	Coordinates region.Coordinates
	Units       UnitSystem
	Lang        string
}

// CurrentWeather is the present conditions at a location.
type CurrentWeather struct {
	Temp       float64   `json:"temp"`
	FeelsLike  float64   `json:"feelsLike"`
	Humidity   float64   `json:"humidity"`
	WindSpeed  float64   `json:"windSpeed"`
	WindDeg    float64   `json:"windDeg"`
	Condition  string    `json:"condition"`
	Icon       string    `json:"icon"`
	Pressure   float64   `json:"pressure"`
	Visibility float64   `json:"visibility"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HourlyItem is a single hour of a forecast.
type HourlyItem struct {
	Time      time.Time `json:"time"`
	Temp      float64   `json:"temp"`
	Pop       float64   `json:"pop"` // probability of precipitation, 0..1
	Icon      string    `json:"icon"`
	Condition string    `json:"condition"`
}

// DailyItem is a single day of a forecast.
type DailyItem struct {
	Date      string    `json:"date"` // YYYY-MM-DD
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Pop       float64   `json:"pop"`
	Icon      string    `json:"icon"`
	Condition string    `json:"condition"`
	Sunrise   time.Time `json:"sunrise"`
	Sunset    time.Time `json:"sunset"`
	Humidity  float64   `json:"humidity"`
}

// ResponseLocation names the place a response was computed for.
type ResponseLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Response is the envelope returned by every weather endpoint.
// Data holds CurrentWeather, []HourlyItem or []DailyItem.
type Response struct {
	Location  ResponseLocation `json:"location"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Data      any              `json:"data"`
}
