package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/service"
	"github.com/stretchr/testify/mock"
)

type TopUpService struct {
	mock.Mock
}

func (m *TopUpService) InitiateTopUp(ctx context.Context, cmd service.TopUpCommand) (service.TopUpResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.TopUpResult), args.Error(1)
}
