package publisher

import (
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *Handler, m *metrics.Metrics) {
	app.Use(metrics.Middleware(m))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", metrics.Handler())

	app.Get("/vk/login", handler.Login)
	app.Get("/vk/callback", handler.Callback)
	app.Post("/publish", handler.Publish)
}
