package service

import (
	"context"
	"errors"
	"time"

	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/model"
	"github.com/adalchemy/billing/internal/repository"
	"github.com/adalchemy/billing/pkg/yookassa"
	"go.uber.org/zap"
)

const topUpDescription = "Пополнение баланса AdAlchemy"

type TopUpService interface {
	InitiateTopUp(ctx context.Context, cmd TopUpCommand) (TopUpResult, error)
}

type topUpService struct {
	yookassaClient yookassa.Client
	userRepo       repository.UserRepository
	paymentRepo    repository.PaymentRepository
	log            *zap.Logger
	metrics        *metrics.Metrics
}

func NewTopUpService(
	yookassaClient yookassa.Client,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	log *zap.Logger,
	metrics *metrics.Metrics,
) TopUpService {
	return &topUpService{
		yookassaClient: yookassaClient,
		userRepo:       userRepo,
		paymentRepo:    paymentRepo,
		log:            log,
		metrics:        metrics,
	}
}

// InitiateTopUp creates the remote payment first and the pending ledger row
// second. A row without a remote payment would be unreachable garbage; a
// remote payment without a row is settled as unknown and ignored.
func (s *topUpService) InitiateTopUp(ctx context.Context, cmd TopUpCommand) (TopUpResult, error) {
	user, err := s.userRepo.FindByTelegramID(ctx, cmd.TelegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TopUpResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return TopUpResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	link, err := s.yookassaClient.CreatePayment(ctx, yookassa.CreatePaymentCommand{
		AmountRub:        cmd.AmountRub,
		TelegramID:       cmd.TelegramID,
		Description:      topUpDescription,
		CustomerFullName: cmd.CustomerFullName,
	})
	if err != nil {
		s.log.Error("YooKassa payment creation failed",
			zap.Int64("telegram_id", cmd.TelegramID),
			zap.String("amount_rub", cmd.AmountRub.StringFixed(2)),
			zap.Error(err),
		)
		s.metrics.RecordTopUp("provider_error")
		return TopUpResult{}, NewServiceError(constants.ErrCodeProviderUnavailable, err)
	}

	payment := model.Payment{
		YookassaPaymentID: link.PaymentID,
		UserID:            user.ID,
		TelegramID:        cmd.TelegramID,
		AmountRub:         cmd.AmountRub,
		Status:            model.PaymentStatusPending,
		CreatedAt:         time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, &payment); err != nil {
		s.log.Error("Failed to persist pending payment",
			zap.String("yookassa_payment_id", link.PaymentID),
			zap.Int64("telegram_id", cmd.TelegramID),
			zap.Error(err),
		)
		s.metrics.RecordTopUp("db_error")
		return TopUpResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("Top-up initiated",
		zap.String("yookassa_payment_id", link.PaymentID),
		zap.Int64("telegram_id", cmd.TelegramID),
		zap.String("amount_rub", cmd.AmountRub.StringFixed(2)),
	)
	s.metrics.RecordTopUp("created")

	return TopUpResult{
		PaymentID:       link.PaymentID,
		ConfirmationURL: link.ConfirmationURL,
	}, nil
}
