package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/adalchemy/billing/pkg/httpclient"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL      = "https://api.yookassa.ru/v3"
	paymentsEndpoint    = "/payments"
	defaultReturnURL    = "https://t.me"
	defaultCustomerName = "Покупатель"
	defaultReceiptEmail = "noreply@adalchemy.local"
)

type CreatePaymentCommand struct {
	AmountRub        decimal.Decimal
	TelegramID       int64
	Description      string
	CustomerFullName string
}

type PaymentLink struct {
	PaymentID       string
	ConfirmationURL string
}

type Client interface {
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (PaymentLink, error)
}

type client struct {
	cfg        Config
	httpClient httpclient.HTTPClient
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &client{cfg: cfg, httpClient: httpClient}
}

func (c *client) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (PaymentLink, error) {
	shopID := strings.TrimSpace(c.cfg.ShopID)
	secretKey := strings.TrimSpace(c.cfg.SecretKey)
	if shopID == "" || secretKey == "" {
		return PaymentLink{}, ErrNotConfigured
	}

	request := c.buildRequest(cmd)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return PaymentLink{}, fmt.Errorf("encoding error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+paymentsEndpoint, &buf)
	if err != nil {
		return PaymentLink{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", uuid.NewString())
	req.SetBasicAuth(shopID, secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return PaymentLink{}, ErrTimeout
		}
		return PaymentLink{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PaymentLink{}, fmt.Errorf("%w: status %d", ErrServerError, resp.StatusCode)
	}

	var response CreatePaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return PaymentLink{}, fmt.Errorf("decoding error: %w", err)
	}

	if response.ID == "" || response.Confirmation.ConfirmationURL == "" {
		return PaymentLink{}, ErrInvalidResponse
	}

	return PaymentLink{
		PaymentID:       response.ID,
		ConfirmationURL: response.Confirmation.ConfirmationURL,
	}, nil
}

func (c *client) buildRequest(cmd CreatePaymentCommand) CreatePaymentRequest {
	value := cmd.AmountRub.StringFixed(2)

	returnURL := strings.TrimSpace(c.cfg.ReturnURL)
	if returnURL == "" {
		returnURL = defaultReturnURL
	}

	fullName := strings.TrimSpace(cmd.CustomerFullName)
	if fullName == "" {
		fullName = defaultCustomerName
	}

	email := strings.TrimSpace(c.cfg.ReceiptEmail)
	if email == "" {
		email = defaultReceiptEmail
	}

	description := cmd.Description
	if len(description) > 128 {
		description = description[:128]
	}

	return CreatePaymentRequest{
		Amount:  Amount{Value: value, Currency: "RUB"},
		Capture: true,
		Confirmation: Confirmation{
			Type:      "redirect",
			ReturnURL: returnURL,
		},
		Description: cmd.Description,
		Metadata:    map[string]string{"telegram_id": strconv.FormatInt(cmd.TelegramID, 10)},
		Receipt: &Receipt{
			Customer: ReceiptCustomer{FullName: fullName, Email: email},
			Items: []ReceiptItem{
				{
					Description:    description,
					Quantity:       1.0,
					Amount:         Amount{Value: value, Currency: "RUB"},
					VatCode:        1,
					PaymentMode:    "full_payment",
					PaymentSubject: "service",
				},
			},
			Internet: "true",
		},
	}
}
