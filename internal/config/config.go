package config

import (
	"fmt"
	"time"

	"github.com/adalchemy/billing/pkg/mysql"
	"github.com/adalchemy/billing/pkg/vkads"
	"github.com/adalchemy/billing/pkg/yookassa"
	"github.com/spf13/viper"
)

type Config struct {
	API      API             `mapstructure:"api"`
	Database mysql.Config    `mapstructure:"database"`
	Telegram Telegram        `mapstructure:"telegram"`
	YooKassa yookassa.Config `mapstructure:"yookassa"`
	VKAds    vkads.Config    `mapstructure:"vk_ads"`
	Token    Token           `mapstructure:"token"`
}

type API struct {
	Port    string `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

type Telegram struct {
	BotToken string        `mapstructure:"bot_token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Token configures symmetric signing of campaign tokens.
type Token struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
