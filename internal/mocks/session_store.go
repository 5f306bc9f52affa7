package mocks

import (
	"context"

	"github.com/adalchemy/billing/internal/session"
	"github.com/stretchr/testify/mock"
)

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Put(ctx context.Context, credential session.Credential) (string, error) {
	args := m.Called(ctx, credential)
	return args.String(0), args.Error(1)
}

func (m *SessionStore) Get(ctx context.Context, sessionID string) (session.Credential, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(session.Credential), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
