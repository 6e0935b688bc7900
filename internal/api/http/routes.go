package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"bmkg-forecast/internal/forecast"
	"bmkg-forecast/internal/store"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app. Everything
// reads from the latest-bundle store; the refresher is the only writer.
func RegisterRoutes(app *fiber.App, st *store.LatestStore) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		bundle, err := getBundle(st)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"location":        bundle.Location,
			"locationSummary": locationSummary(bundle),
			"analysisInstant": analysisInstant(bundle),
			"series":          bundle.Series,
		})
	})

	v1.Get("/forecast/latest", func(c *fiber.Ctx) error {
		bundle, err := getBundle(st)
		if err != nil {
			return err
		}

		latest, ok := bundle.Latest()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "forecast series is empty")
		}
		return c.JSON(latest)
	})

	v1.Get("/forecast/window", func(c *fiber.Ctx) error {
		bundle, err := getBundle(st)
		if err != nil {
			return err
		}

		// The reference instant is a parameter so callers (and tests) can
		// pin the window; it defaults to the server's clock.
		now := time.Now().UTC()
		if at := c.Query("at"); at != "" {
			parsed, err := parseTime(at)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			now = parsed
		}

		return c.JSON(fiber.Map{
			"at":           now,
			"observations": bundle.Window(now),
			"averages":     bundle.WindowAverages(now),
		})
	})
}

func getBundle(st *store.LatestStore) (forecast.Bundle, error) {
	bundle, err := st.Get()
	if err != nil {
		if errors.Is(err, store.ErrNotReady) {
			return forecast.Bundle{}, fiber.NewError(fiber.StatusServiceUnavailable, "forecast not loaded yet")
		}
		return forecast.Bundle{}, fiber.NewError(fiber.StatusInternalServerError, "failed to read forecast data")
	}
	return bundle, nil
}

func locationSummary(b forecast.Bundle) string {
	if b.Location == nil {
		return ""
	}
	return b.Location.Summary()
}

// analysisInstant maps the zero value to a JSON null.
func analysisInstant(b forecast.Bundle) any {
	if !b.HasAnalysisInstant() {
		return nil
	}
	return b.AnalysisInstant
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
