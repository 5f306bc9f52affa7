package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Middleware(m *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()

		err := c.Next()

		m.HTTPRequestsInFlight.Dec()

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				fiberErr = e
				status = fiberErr.Code
			}
		}

		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(status)}
		m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the prometheus scrape endpoint on a fiber app.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
