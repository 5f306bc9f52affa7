package main

import (
	"context"
	"net/http"
	"time"

	"github.com/adalchemy/billing/internal/api"
	v1 "github.com/adalchemy/billing/internal/api/v1"
	apivalidator "github.com/adalchemy/billing/internal/api/validator"
	"github.com/adalchemy/billing/internal/config"
	apierrors "github.com/adalchemy/billing/internal/errors"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/notifier"
	"github.com/adalchemy/billing/internal/repository"
	"github.com/adalchemy/billing/internal/service"
	"github.com/adalchemy/billing/pkg/httpclient"
	"github.com/adalchemy/billing/pkg/mysql"
	"github.com/adalchemy/billing/pkg/yookassa"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,
			validator.New,
			apivalidator.NewXValidator,
			newFiber,
			newDatabase,
			repository.NewTransactionManager,
			repository.NewPaymentRepository,
			repository.NewUserRepository,
			newNotifier,
			newYookassaClient,
			newSettlementService,
			service.NewBalanceService,
			service.NewTopUpService,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiber() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})
}

func newDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}

func newNotifier(cfg *config.Config, logger *zap.Logger) (notifier.Notifier, error) {
	if cfg.Telegram.BotToken == "" {
		logger.Warn("Telegram bot token not configured, notifications disabled")
		return notifier.NewNoopNotifier(logger), nil
	}

	timeout := cfg.Telegram.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.BotToken, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, err
	}

	return notifier.NewTelegramNotifier(botAPI, logger), nil
}

func newYookassaClient(cfg *config.Config) yookassa.Client {
	return yookassa.NewClient(cfg.YooKassa, httpclient.NewHTTPClient(cfg.YooKassa.Timeout))
}

func newSettlementService(
	txManager repository.TxManager,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	n notifier.Notifier,
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
) service.SettlementService {
	return service.NewSettlementService(txManager, paymentRepo, userRepo, n, cfg.Telegram.Timeout, logger, m)
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, cfg.YooKassa.WebhookPath)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting billing API",
				zap.String("port", cfg.API.Port),
				zap.String("webhook_url", cfg.API.BaseURL+cfg.YooKassa.WebhookPath),
			)
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
