package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/mocks"
	"github.com/adalchemy/billing/internal/model"
	"github.com/adalchemy/billing/internal/repository"
	"github.com/adalchemy/billing/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const paymentID = "2c3f9a10-000f-5000-8000-1f64904dcb1c"

func pendingPayment() model.Payment {
	return model.Payment{
		ID:                1,
		YookassaPaymentID: paymentID,
		UserID:            7,
		TelegramID:        123,
		AmountRub:         decimal.RequireFromString("500.00"),
		Status:            model.PaymentStatusPending,
		CreatedAt:         time.Now(),
	}
}

func newSettlementService(
	txManager *mocks.TxManager,
	paymentRepo *mocks.PaymentRepository,
	userRepo *mocks.UserRepository,
	n *mocks.Notifier,
) service.SettlementService {
	return service.NewSettlementService(txManager, paymentRepo, userRepo, n, time.Second, zap.NewNop(), nil)
}

func TestSettlement_Settle(t *testing.T) {
	t.Run("Pending payment is settled and balance credited once", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		payment := pendingPayment()
		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).Return(payment, nil)
		txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		paymentRepo.On("MarkSucceeded", mock.Anything, paymentID).Return(int64(1), nil)
		userRepo.On("AddBalance", mock.Anything, int64(123), payment.AmountRub).Return(int64(1), nil)
		n.On("NotifyTopUp", mock.Anything, int64(123), payment.AmountRub).Return(nil)

		outcome, err := svc.Settle(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.Equal(t, service.SettleCredited, outcome)
		userRepo.AssertNumberOfCalls(t, "AddBalance", 1)
		n.AssertNumberOfCalls(t, "NotifyTopUp", 1)
	})

	t.Run("Unknown payment id is acknowledged without any mutation", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).
			Return(model.Payment{}, repository.ErrPaymentNotFound)

		outcome, err := svc.Settle(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.Equal(t, service.SettleUnknownPayment, outcome)
		txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
		n.AssertNotCalled(t, "NotifyTopUp", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already settled payment is a no-op", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		payment := pendingPayment()
		payment.Status = model.PaymentStatusSucceeded
		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).Return(payment, nil)

		outcome, err := svc.Settle(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.Equal(t, service.SettleAlreadySettled, outcome)
		txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Concurrent duplicate loses the conditional update and credits nothing", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		// The read still sees pending but another delivery settles first:
		// zero affected rows is the authoritative answer.
		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).Return(pendingPayment(), nil)
		txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		paymentRepo.On("MarkSucceeded", mock.Anything, paymentID).Return(int64(0), nil)

		outcome, err := svc.Settle(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.Equal(t, service.SettleAlreadySettled, outcome)
		userRepo.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)
		n.AssertNotCalled(t, "NotifyTopUp", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Credit failure rolls back and surfaces an operation error", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		payment := pendingPayment()
		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).Return(payment, nil)
		txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		paymentRepo.On("MarkSucceeded", mock.Anything, paymentID).Return(int64(1), nil)
		userRepo.On("AddBalance", mock.Anything, int64(123), payment.AmountRub).
			Return(int64(0), errors.New("connection reset"))

		_, err := svc.Settle(context.Background(), paymentID)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
		n.AssertNotCalled(t, "NotifyTopUp", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing user row fails the transaction instead of dropping the credit", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		payment := pendingPayment()
		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).Return(payment, nil)
		txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		paymentRepo.On("MarkSucceeded", mock.Anything, paymentID).Return(int64(1), nil)
		userRepo.On("AddBalance", mock.Anything, int64(123), payment.AmountRub).Return(int64(0), nil)

		_, err := svc.Settle(context.Background(), paymentID)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
		assert.ErrorIs(t, serviceErr.Cause, repository.ErrUserNotFound)
	})

	t.Run("Notification failure never changes the settlement outcome", func(t *testing.T) {
		txManager := &mocks.TxManager{}
		paymentRepo := &mocks.PaymentRepository{}
		userRepo := &mocks.UserRepository{}
		n := &mocks.Notifier{}
		svc := newSettlementService(txManager, paymentRepo, userRepo, n)

		payment := pendingPayment()
		paymentRepo.On("FindByYookassaID", mock.Anything, paymentID).Return(payment, nil)
		txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		paymentRepo.On("MarkSucceeded", mock.Anything, paymentID).Return(int64(1), nil)
		userRepo.On("AddBalance", mock.Anything, int64(123), payment.AmountRub).Return(int64(1), nil)
		n.On("NotifyTopUp", mock.Anything, int64(123), payment.AmountRub).
			Return(errors.New("telegram unreachable"))

		outcome, err := svc.Settle(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.Equal(t, service.SettleCredited, outcome)
	})
}
