package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (model.User, error) {
	args := m.Called(ctx, telegramID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserRepository) AddBalance(ctx context.Context, telegramID int64, amount decimal.Decimal) (int64, error) {
	args := m.Called(ctx, telegramID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) DeductBalance(ctx context.Context, telegramID int64, amount decimal.Decimal) (int64, error) {
	args := m.Called(ctx, telegramID, amount)
	return args.Get(0).(int64), args.Error(1)
}
