package api

import (
	v1 "github.com/adalchemy/billing/internal/api/v1"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

const (
	prefixV1           = "/api/v1"
	defaultWebhookPath = "/yookassa/webhook"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, webhookPath string) {
	app.Use(metrics.Middleware(m))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", metrics.Handler())

	app.Post(prefixV1+"/users", handler.EnsureUser)
	app.Post(prefixV1+"/users/balance", handler.GetUserBalance)
	app.Post(prefixV1+"/user/decrease/balance", handler.DecreaseUserBalance)
	app.Post(prefixV1+"/payments", handler.CreatePayment)

	if webhookPath == "" {
		webhookPath = defaultWebhookPath
	}
	// Registered for every method so the handler can answer the wrong verb
	// with a JSON 405 instead of fiber's default.
	app.All(webhookPath, handler.YookassaWebhook)
}
