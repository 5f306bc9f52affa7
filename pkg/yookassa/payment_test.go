package yookassa_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adalchemy/billing/pkg/httpclient"
	"github.com/adalchemy/billing/pkg/yookassa"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestClient(server *httptest.Server) yookassa.Client {
	cfg := yookassa.Config{
		BaseURL:   server.URL,
		ShopID:    "123456",
		SecretKey: "test_secret",
		ReturnURL: "https://t.me/adalchemy_bot",
	}
	return yookassa.NewClient(cfg, httpclient.NewHTTPClient(5*time.Second))
}

func TestClient_CreatePayment(t *testing.T) {
	cmd := yookassa.CreatePaymentCommand{
		AmountRub:   decimal.RequireFromString("500.00"),
		TelegramID:  123,
		Description: "Пополнение баланса",
	}

	t.Run("Builds an authenticated idempotent request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payments", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("Idempotence-Key"))

			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "123456", username)
			assert.Equal(t, "test_secret", password)

			var request map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			amount := request["amount"].(map[string]any)
			assert.Equal(t, "500.00", amount["value"])
			assert.Equal(t, "RUB", amount["currency"])
			metadata := request["metadata"].(map[string]any)
			assert.Equal(t, "123", metadata["telegram_id"])
			assert.NotNil(t, request["receipt"])

			w.Write([]byte(`{"id":"pay-1","status":"pending","confirmation":{"type":"redirect","confirmation_url":"https://yoomoney.ru/checkout/pay-1"}}`))
		}))
		defer server.Close()

		link, err := newTestClient(server).CreatePayment(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, "pay-1", link.PaymentID)
		assert.Equal(t, "https://yoomoney.ru/checkout/pay-1", link.ConfirmationURL)
	})

	t.Run("Missing credentials fail before any request", func(t *testing.T) {
		client := yookassa.NewClient(yookassa.Config{}, nil)

		_, err := client.CreatePayment(context.Background(), cmd)

		assert.ErrorIs(t, err, yookassa.ErrNotConfigured)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server).CreatePayment(context.Background(), cmd)

		assert.ErrorIs(t, err, yookassa.ErrServerError)
	})

	t.Run("Response without a confirmation link", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"pay-1","status":"pending"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).CreatePayment(context.Background(), cmd)

		assert.ErrorIs(t, err, yookassa.ErrInvalidResponse)
	})
}
