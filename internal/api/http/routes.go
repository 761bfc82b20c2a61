package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/region"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

const msgMissingCoordinates = "Missing required parameters: lat, lon"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, regions *region.Index) {
	api := app.Group("/api")

	w := api.Group("/weather")

	w.Get("/current", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return err
		}
		resp, err := service.Current(c.UserContext(), q)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(resp)
	})

	w.Get("/hourly", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return err
		}
		hours, err := queryInt(c, "hours", weather.DefaultHours)
		if err != nil {
			return err
		}
		resp, err := service.Hourly(c.UserContext(), q, hours)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(resp)
	})

	w.Get("/daily", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return err
		}
		days, err := queryInt(c, "days", weather.DefaultDays)
		if err != nil {
			return err
		}
		resp, err := service.Daily(c.UserContext(), q, days)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(resp)
	})

	api.Get("/regions", func(c *fiber.Ctx) error {
		query := c.Query("q")
		return c.JSON(fiber.Map{
			"query":   query,
			"regions": regions.Search(query),
		})
	})

	r := api.Group("/regions")

	// Registered before /:id so "nearest" is not taken for an id.
	r.Get("/nearest", func(c *fiber.Ctx) error {
		coords, err := parseCoordinates(c)
		if err != nil {
			return err
		}
		nearest := regions.FindNearest(coords)
		return c.JSON(fiber.Map{
			"region":     nearest,
			"distanceKm": region.Distance(coords, nearest.Coordinates),
		})
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		found, ok := regions.FindByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "region not found")
		}
		return c.JSON(found)
	})

	api.Delete("/cache", func(c *fiber.Ctx) error {
		service.ClearCache()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// coordinateQuery holds the raw lat/lon query parameters.
type coordinateQuery struct {
	Lat string `validate:"required,numeric"`
	Lon string `validate:"required,numeric"`
}

// weatherQuery holds the query parameters shared by the weather endpoints.
type weatherQuery struct {
	coordinateQuery
	Units string `validate:"omitempty,oneof=metric imperial"`
	Lang  string `validate:"omitempty,max=10"`
}

func parseCoordinates(c *fiber.Ctx) (region.Coordinates, error) {
	raw := coordinateQuery{
		Lat: c.Query("lat"),
		Lon: c.Query("lon"),
	}
	return raw.coordinates()
}

func (q coordinateQuery) coordinates() (region.Coordinates, error) {
	if q.Lat == "" || q.Lon == "" {
		return region.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, msgMissingCoordinates)
	}
	if err := validate.Struct(q); err != nil {
		return region.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	lat, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return region.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, "invalid lat")
	}
	lon, err := strconv.ParseFloat(q.Lon, 64)
	if err != nil {
		return region.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, "invalid lon")
	}
	return region.Coordinates{Lat: lat, Lon: lon}, nil
}

func parseWeatherQuery(c *fiber.Ctx) (weather.Query, error) {
	raw := weatherQuery{
		coordinateQuery: coordinateQuery{
			Lat: c.Query("lat"),
			Lon: c.Query("lon"),
		},
		Units: c.Query("units"),
		Lang:  c.Query("lang"),
	}

	coords, err := raw.coordinates()
	if err != nil {
		return weather.Query{}, err
	}
	if err := validate.Struct(raw); err != nil {
		return weather.Query{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return weather.Query{
		Coordinates: coords,
		Units:       weather.UnitSystem(raw.Units),
		Lang:        raw.Lang,
	}, nil
}

func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s: must be an integer", name))
	}
	return n, nil
}

func upstreamError(err error) error {
	if errors.Is(err, weather.ErrUpstream) {
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
	}
	return err
}
