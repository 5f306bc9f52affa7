package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/model"
	"github.com/stretchr/testify/mock"
)

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentRepository) FindByYookassaID(ctx context.Context, yookassaPaymentID string) (model.Payment, error) {
	args := m.Called(ctx, yookassaPaymentID)
	return args.Get(0).(model.Payment), args.Error(1)
}

func (m *PaymentRepository) MarkSucceeded(ctx context.Context, yookassaPaymentID string) (int64, error) {
	args := m.Called(ctx, yookassaPaymentID)
	return args.Get(0).(int64), args.Error(1)
}
