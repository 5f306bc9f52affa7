package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/adalchemy/billing/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Put and get", func(t *testing.T) {
		store := session.NewMemoryStore()

		sessionID, err := store.Put(ctx, session.Credential{AccessToken: "vk-token", VKUserID: 42})
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)

		credential, err := store.Get(ctx, sessionID)
		assert.NoError(t, err)
		assert.Equal(t, "vk-token", credential.AccessToken)
		assert.Equal(t, int64(42), credential.VKUserID)
	})

	t.Run("Unknown session id", func(t *testing.T) {
		store := session.NewMemoryStore()

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("Expired credential is evicted", func(t *testing.T) {
		store := session.NewMemoryStore()

		sessionID, err := store.Put(ctx, session.Credential{
			AccessToken: "vk-token",
			ExpiresAt:   time.Now().Add(-time.Second),
		})
		assert.NoError(t, err)

		_, err = store.Get(ctx, sessionID)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		store := session.NewMemoryStore()

		sessionID, err := store.Put(ctx, session.Credential{AccessToken: "vk-token"})
		assert.NoError(t, err)

		assert.NoError(t, store.Delete(ctx, sessionID))

		_, err = store.Get(ctx, sessionID)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("Session ids are unique", func(t *testing.T) {
		store := session.NewMemoryStore()

		first, err := store.Put(ctx, session.Credential{AccessToken: "a"})
		assert.NoError(t, err)
		second, err := store.Put(ctx, session.Credential{AccessToken: "b"})
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
