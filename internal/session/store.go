package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("SESSION_NOT_FOUND")

// Credential is the ad-platform access credential held server-side and
// referenced by session id only.
type Credential struct {
	AccessToken string
	VKUserID    int64
	ExpiresAt   time.Time
}

// Store keeps credentials out of the publishing logic so any backing
// mechanism (memory, Redis, DB) can be plugged in.
type Store interface {
	Put(ctx context.Context, credential Credential) (string, error)
	Get(ctx context.Context, sessionID string) (Credential, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryStore struct {
	mu          sync.RWMutex
	credentials map[string]Credential
}

func NewMemoryStore() Store {
	return &memoryStore{credentials: make(map[string]Credential)}
}

func (s *memoryStore) Put(_ context.Context, credential Credential) (string, error) {
	sessionID := uuid.NewString()

	s.mu.Lock()
	s.credentials[sessionID] = credential
	s.mu.Unlock()

	return sessionID, nil
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (Credential, error) {
	s.mu.RLock()
	credential, ok := s.credentials[sessionID]
	s.mu.RUnlock()

	if !ok {
		return Credential{}, ErrNotFound
	}
	if !credential.ExpiresAt.IsZero() && time.Now().After(credential.ExpiresAt) {
		_ = s.Delete(context.Background(), sessionID)
		return Credential{}, ErrNotFound
	}

	return credential, nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.credentials, sessionID)
	s.mu.Unlock()
	return nil
}
