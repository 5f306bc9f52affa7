package service

import "github.com/shopspring/decimal"

type EnsureUserCommand struct {
	TelegramID   int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
}

type TopUpCommand struct {
	TelegramID       int64
	AmountRub        decimal.Decimal
	CustomerFullName string
}

type TopUpResult struct {
	PaymentID       string `json:"payment_id"`
	ConfirmationURL string `json:"confirmation_url"`
}

type DeductCommand struct {
	TelegramID int64
	AmountRub  decimal.Decimal
}

type PublishCommand struct {
	Token     string
	SessionID string
}

type PublishResult struct {
	CampaignID int64   `json:"campaign_id"`
	AdGroupIDs []int64 `json:"ad_group_ids"`
	AdIDs      []int64 `json:"ad_ids"`
}
