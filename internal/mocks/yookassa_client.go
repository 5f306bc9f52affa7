package mocks

import (
	"context"

	"github.com/adalchemy/billing/pkg/yookassa"
	"github.com/stretchr/testify/mock"
)

type YookassaClient struct {
	mock.Mock
}

func (m *YookassaClient) CreatePayment(ctx context.Context, cmd yookassa.CreatePaymentCommand) (yookassa.PaymentLink, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(yookassa.PaymentLink), args.Error(1)
}
