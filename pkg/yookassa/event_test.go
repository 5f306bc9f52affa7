package yookassa_test

import (
	"testing"

	"github.com/adalchemy/billing/pkg/yookassa"
	"github.com/stretchr/testify/assert"
)

func TestParseWebhookEvent(t *testing.T) {
	t.Run("Settlement event with id", func(t *testing.T) {
		body := `{"event":"payment.succeeded","object":{"id":"2c3f9a10-000f-5000-8000-1f64904dcb1c","status":"succeeded","amount":{"value":"500.00","currency":"RUB"}}}`

		event, err := yookassa.ParseWebhookEvent([]byte(body))

		assert.NoError(t, err)
		assert.True(t, event.IsSettlement())
		assert.Equal(t, "2c3f9a10-000f-5000-8000-1f64904dcb1c", event.PaymentID)
	})

	t.Run("Non-settlement event parses without an id", func(t *testing.T) {
		body := `{"event":"payment.canceled","object":{"id":"abc"}}`

		event, err := yookassa.ParseWebhookEvent([]byte(body))

		assert.NoError(t, err)
		assert.False(t, event.IsSettlement())
		assert.Empty(t, event.PaymentID)
	})

	t.Run("Non-settlement event with no object at all is fine", func(t *testing.T) {
		event, err := yookassa.ParseWebhookEvent([]byte(`{"event":"refund.succeeded"}`))

		assert.NoError(t, err)
		assert.False(t, event.IsSettlement())
	})

	t.Run("Malformed body", func(t *testing.T) {
		_, err := yookassa.ParseWebhookEvent([]byte(`{"event":`))

		assert.ErrorIs(t, err, yookassa.ErrInvalidJSON)
	})

	t.Run("Empty body", func(t *testing.T) {
		_, err := yookassa.ParseWebhookEvent(nil)

		assert.ErrorIs(t, err, yookassa.ErrInvalidJSON)
	})

	t.Run("Settlement event without object", func(t *testing.T) {
		_, err := yookassa.ParseWebhookEvent([]byte(`{"event":"payment.succeeded"}`))

		assert.ErrorIs(t, err, yookassa.ErrMissingObjectID)
	})

	t.Run("Settlement event with missing id", func(t *testing.T) {
		_, err := yookassa.ParseWebhookEvent([]byte(`{"event":"payment.succeeded","object":{"status":"succeeded"}}`))

		assert.ErrorIs(t, err, yookassa.ErrMissingObjectID)
	})

	t.Run("Settlement event with empty id", func(t *testing.T) {
		_, err := yookassa.ParseWebhookEvent([]byte(`{"event":"payment.succeeded","object":{"id":""}}`))

		assert.ErrorIs(t, err, yookassa.ErrMissingObjectID)
	})

	t.Run("Settlement event with non-string id", func(t *testing.T) {
		_, err := yookassa.ParseWebhookEvent([]byte(`{"event":"payment.succeeded","object":{"id":42}}`))

		assert.ErrorIs(t, err, yookassa.ErrMissingObjectID)
	})
}
