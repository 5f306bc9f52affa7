package main

import (
	"context"

	"github.com/adalchemy/billing/internal/api/publisher"
	"github.com/adalchemy/billing/internal/config"
	apierrors "github.com/adalchemy/billing/internal/errors"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/service"
	"github.com/adalchemy/billing/internal/session"
	"github.com/adalchemy/billing/internal/token"
	"github.com/adalchemy/billing/pkg/httpclient"
	"github.com/adalchemy/billing/pkg/vkads"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,
			newFiber,
			newAdsClient,
			newSigner,
			session.NewMemoryStore,
			service.NewPublishService,
			publisher.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiber() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})
}

func newAdsClient(cfg *config.Config) vkads.API {
	return vkads.NewClient(cfg.VKAds, httpclient.NewHTTPClient(cfg.VKAds.Timeout))
}

func newSigner(cfg *config.Config) *token.Signer {
	return token.NewSigner(cfg.Token.Secret, cfg.Token.TTL)
}

func startServer(app *fiber.App, handler *publisher.Handler, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	publisher.SetupRoutes(app, handler, m)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting campaign publisher", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
