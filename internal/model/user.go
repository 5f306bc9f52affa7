package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	TelegramID   int64           `gorm:"column:telegram_id;uniqueIndex;not null"`
	Balance      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FirstName    *string         `gorm:"type:varchar(255)"`
	LastName     *string         `gorm:"type:varchar(255)"`
	Username     *string         `gorm:"type:varchar(255)"`
	LanguageCode *string         `gorm:"type:varchar(16)"`
	CreatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string {
	return "users"
}
