package notifier

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NewNoopNotifier stands in when no bot token is configured; settlements
// proceed without user messages.
func NewNoopNotifier(logger *zap.Logger) Notifier {
	return &noopNotifier{logger: logger}
}

type noopNotifier struct {
	logger *zap.Logger
}

func (n *noopNotifier) NotifyTopUp(_ context.Context, telegramID int64, amountRub decimal.Decimal) error {
	n.logger.Debug("Notification skipped, Telegram not configured",
		zap.Int64("telegram_id", telegramID),
		zap.String("amount_rub", amountRub.StringFixed(2)),
	)
	return nil
}
