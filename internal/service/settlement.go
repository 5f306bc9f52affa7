package service

import (
	"context"
	"errors"
	"time"

	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/model"
	"github.com/adalchemy/billing/internal/notifier"
	"github.com/adalchemy/billing/internal/repository"
	"go.uber.org/zap"
)

const defaultNotifyTimeout = 10 * time.Second

type SettleOutcome int

const (
	// SettleUnknownPayment covers ids this shop has never issued. Treated
	// as already-handled so the processor stops retrying.
	SettleUnknownPayment SettleOutcome = iota
	// SettleAlreadySettled means the payment left pending earlier, either
	// before this delivery or inside a concurrent one.
	SettleAlreadySettled
	// SettleCredited means this call won the conditional update and the
	// balance was credited.
	SettleCredited
)

type SettlementService interface {
	Settle(ctx context.Context, yookassaPaymentID string) (SettleOutcome, error)
}

type settlementService struct {
	txManager     repository.TxManager
	paymentRepo   repository.PaymentRepository
	userRepo      repository.UserRepository
	notifier      notifier.Notifier
	notifyTimeout time.Duration
	log           *zap.Logger
	metrics       *metrics.Metrics
}

func NewSettlementService(
	txManager repository.TxManager,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	notifier notifier.Notifier,
	notifyTimeout time.Duration,
	log *zap.Logger,
	metrics *metrics.Metrics,
) SettlementService {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &settlementService{
		txManager:     txManager,
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		log:           log,
		metrics:       metrics,
	}
}

func (s *settlementService) Settle(ctx context.Context, yookassaPaymentID string) (SettleOutcome, error) {
	start := time.Now()

	payment, err := s.paymentRepo.FindByYookassaID(ctx, yookassaPaymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			s.log.Warn("Settlement for unknown payment",
				zap.String("yookassa_payment_id", yookassaPaymentID))
			s.metrics.RecordSettlement("unknown")
			return SettleUnknownPayment, nil
		}
		s.metrics.RecordSettlement("error")
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if payment.Status != model.PaymentStatusPending {
		s.metrics.RecordSettlement("already_settled")
		return SettleAlreadySettled, nil
	}

	credited := false
	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		// The affected-row count of this conditional update is the only
		// authoritative settlement check; the read above is advisory.
		rows, err := s.paymentRepo.MarkSucceeded(ctx, yookassaPaymentID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}

		rows, err = s.userRepo.AddBalance(ctx, payment.TelegramID, payment.AmountRub)
		if err != nil {
			return err
		}
		if rows == 0 {
			// No user row to credit: roll everything back so the payment
			// stays pending and the processor redelivers.
			return repository.ErrUserNotFound
		}

		credited = true
		return nil
	})

	if err != nil {
		s.log.Error("Settlement transaction failed",
			zap.String("yookassa_payment_id", yookassaPaymentID),
			zap.Int64("telegram_id", payment.TelegramID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		s.metrics.RecordSettlement("error")
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if !credited {
		s.metrics.RecordSettlement("already_settled")
		return SettleAlreadySettled, nil
	}

	s.log.Info("Payment settled",
		zap.String("yookassa_payment_id", yookassaPaymentID),
		zap.Int64("telegram_id", payment.TelegramID),
		zap.String("amount_rub", payment.AmountRub.StringFixed(2)),
		zap.Duration("duration", time.Since(start)),
	)
	s.metrics.RecordSettlement("credited")

	s.notifyUser(ctx, payment)

	return SettleCredited, nil
}

// notifyUser runs after the commit. Failures are logged and swallowed so the
// ledger outcome and the HTTP response stay untouched.
func (s *settlementService) notifyUser(ctx context.Context, payment model.Payment) {
	if s.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifyTopUp(notifyCtx, payment.TelegramID, payment.AmountRub); err != nil {
		s.log.Warn("Settlement notification failed",
			zap.Int64("telegram_id", payment.TelegramID),
			zap.Error(err),
		)
	}
}
