package repository

import (
	"context"
	"errors"

	"github.com/adalchemy/billing/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrPaymentExists   = errors.New("PAYMENT_EXISTED")
	ErrPaymentNotFound = errors.New("PAYMENT_NOT_FOUND")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByYookassaID(ctx context.Context, yookassaPaymentID string) (model.Payment, error)
	// MarkSucceeded flips status to succeeded only while it is still pending
	// and reports the affected-row count. That count, not any earlier read,
	// decides whether the caller owns the settlement.
	MarkSucceeded(ctx context.Context, yookassaPaymentID string) (int64, error)
}

type payment struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &payment{db: db}
}

func (r *payment) Create(ctx context.Context, p *model.Payment) error {
	db := GetTx(ctx, r.db)
	err := db.Create(p).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrPaymentExists
	}

	return err
}

func (r *payment) FindByYookassaID(ctx context.Context, yookassaPaymentID string) (model.Payment, error) {
	var p model.Payment
	db := GetTx(ctx, r.db)
	err := db.Where("yookassa_payment_id = ?", yookassaPaymentID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Payment{}, ErrPaymentNotFound
		}
		return model.Payment{}, err
	}
	return p, nil
}

func (r *payment) MarkSucceeded(ctx context.Context, yookassaPaymentID string) (int64, error) {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.Payment{}).
		Where("yookassa_payment_id = ? AND status = ?", yookassaPaymentID, model.PaymentStatusPending).
		Update("status", model.PaymentStatusSucceeded)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
