package yookassa

import "time"

type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	ShopID       string        `mapstructure:"shop_id"`
	SecretKey    string        `mapstructure:"secret_key"`
	ReturnURL    string        `mapstructure:"return_url"`
	ReceiptEmail string        `mapstructure:"receipt_email"`
	WebhookPath  string        `mapstructure:"webhook_path"`
	Timeout      time.Duration `mapstructure:"timeout"`
}
