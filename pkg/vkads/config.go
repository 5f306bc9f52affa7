package vkads

import "time"

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	OAuthURL    string        `mapstructure:"oauth_url"`
	AppID       string        `mapstructure:"app_id"`
	AppSecret   string        `mapstructure:"app_secret"`
	RedirectURL string        `mapstructure:"redirect_url"`
	AccountID   string        `mapstructure:"account_id"`
	APIVersion  string        `mapstructure:"api_version"`
	Timeout     time.Duration `mapstructure:"timeout"`
}
