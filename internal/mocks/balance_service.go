package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/model"
	"github.com/adalchemy/billing/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type BalanceService struct {
	mock.Mock
}

func (m *BalanceService) EnsureUser(ctx context.Context, cmd service.EnsureUserCommand) (model.User, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *BalanceService) GetBalance(ctx context.Context, telegramID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, telegramID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *BalanceService) Deduct(ctx context.Context, cmd service.DeductCommand) (model.User, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.User), args.Error(1)
}
