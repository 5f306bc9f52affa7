package repository

import (
	"context"
	"errors"

	"github.com/adalchemy/billing/internal/model"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrUserExists   = errors.New("USER_EXISTED")
	ErrUserNotFound = errors.New("USER_NOT_FOUND")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByTelegramID(ctx context.Context, telegramID int64) (model.User, error)
	// AddBalance credits the user's balance in a single statement and
	// reports the affected-row count.
	AddBalance(ctx context.Context, telegramID int64, amount decimal.Decimal) (int64, error)
	// DeductBalance debits only when the balance covers the amount.
	// A zero affected-row count means the user is missing or overdrawn.
	DeductBalance(ctx context.Context, telegramID int64, amount decimal.Decimal) (int64, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) Create(ctx context.Context, u *model.User) error {
	db := GetTx(ctx, r.db)
	err := db.Create(u).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserExists
	}

	return err
}

func (r *user) FindByTelegramID(ctx context.Context, telegramID int64) (model.User, error) {
	var u model.User
	db := GetTx(ctx, r.db)
	err := db.Where("telegram_id = ?", telegramID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *user) AddBalance(ctx context.Context, telegramID int64, amount decimal.Decimal) (int64, error) {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.User{}).
		Where("telegram_id = ?", telegramID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *user) DeductBalance(ctx context.Context, telegramID int64, amount decimal.Decimal) (int64, error) {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.User{}).
		Where("telegram_id = ? AND balance >= ?", telegramID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
