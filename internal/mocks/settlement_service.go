package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/service"
	"github.com/stretchr/testify/mock"
)

type SettlementService struct {
	mock.Mock
}

func (m *SettlementService) Settle(ctx context.Context, yookassaPaymentID string) (service.SettleOutcome, error) {
	args := m.Called(ctx, yookassaPaymentID)
	return args.Get(0).(service.SettleOutcome), args.Error(1)
}
