package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifyTopUp(ctx context.Context, telegramID int64, amountRub decimal.Decimal) error {
	args := m.Called(ctx, telegramID, amountRub)
	return args.Error(0)
}
