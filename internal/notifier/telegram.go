package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Notifier delivers a best-effort message after settlement. Implementations
// must never let a delivery failure reach the ledger path.
type Notifier interface {
	NotifyTopUp(ctx context.Context, telegramID int64, amountRub decimal.Decimal) error
}

type telegramNotifier struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

func NewTelegramNotifier(api *tgbotapi.BotAPI, logger *zap.Logger) Notifier {
	return &telegramNotifier{api: api, logger: logger}
}

// NotifyTopUp sends the top-up confirmation. Send has no context support,
// so the call runs in a goroutine and the caller stops waiting at the
// deadline while the request finishes in the background.
func (n *telegramNotifier) NotifyTopUp(ctx context.Context, telegramID int64, amountRub decimal.Decimal) error {
	text := fmt.Sprintf("Баланс успешно пополнен на %s ₽. Спасибо!", amountRub.StringFixed(2))
	msg := tgbotapi.NewMessage(telegramID, text)

	errCh := make(chan error, 1)
	go func() {
		_, err := n.api.Send(msg)
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		n.logger.Warn("Telegram notification abandoned",
			zap.Int64("telegram_id", telegramID),
			zap.Error(ctx.Err()),
		)
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			n.logger.Warn("Failed to send Telegram notification",
				zap.Int64("telegram_id", telegramID),
				zap.Error(err),
			)
		}
		return err
	}
}
