package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusCanceled  = "canceled"
)

// Payment mirrors a YooKassa payment. The (YookassaPaymentID, Status) pair
// moves from pending to succeeded at most once; that transition is the only
// thing that credits the owning user's balance.
type Payment struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	YookassaPaymentID string          `gorm:"column:yookassa_payment_id;type:varchar(64);uniqueIndex;not null"`
	UserID            int64           `gorm:"not null"`
	TelegramID        int64           `gorm:"column:telegram_id;not null"`
	AmountRub         decimal.Decimal `gorm:"column:amount_rub;type:decimal(10,2);not null"`
	Status            string          `gorm:"type:varchar(20);default:'pending'"`
	CreatedAt         time.Time       `gorm:"default:CURRENT_TIMESTAMP"`
}

func (Payment) TableName() string {
	return "payments"
}
