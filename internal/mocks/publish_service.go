package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/service"
	"github.com/stretchr/testify/mock"
)

type PublishService struct {
	mock.Mock
}

func (m *PublishService) Publish(ctx context.Context, cmd service.PublishCommand) (service.PublishResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.PublishResult), args.Error(1)
}
