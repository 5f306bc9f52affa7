package service

import (
	"context"
	"errors"
	"time"

	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/model"
	"github.com/adalchemy/billing/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InitialBalanceRub is granted once, when a user is first seen.
var InitialBalanceRub = decimal.NewFromInt(500)

type BalanceService interface {
	EnsureUser(ctx context.Context, cmd EnsureUserCommand) (model.User, error)
	GetBalance(ctx context.Context, telegramID int64) (decimal.Decimal, error)
	Deduct(ctx context.Context, cmd DeductCommand) (model.User, error)
}

type balanceService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewBalanceService(userRepo repository.UserRepository, log *zap.Logger, metrics *metrics.Metrics) BalanceService {
	return &balanceService{userRepo: userRepo, log: log, metrics: metrics}
}

func (s *balanceService) EnsureUser(ctx context.Context, cmd EnsureUserCommand) (model.User, error) {
	user, err := s.userRepo.FindByTelegramID(ctx, cmd.TelegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user = model.User{
		TelegramID:   cmd.TelegramID,
		Balance:      InitialBalanceRub,
		FirstName:    optional(cmd.FirstName, 255),
		LastName:     optional(cmd.LastName, 255),
		Username:     optional(cmd.Username, 255),
		LanguageCode: optional(cmd.LanguageCode, 16),
		CreatedAt:    time.Now(),
	}

	err = s.userRepo.Create(ctx, &user)
	if err == nil {
		s.log.Info("User created",
			zap.Int64("telegram_id", cmd.TelegramID),
			zap.String("initial_balance", InitialBalanceRub.StringFixed(2)),
		)
		s.metrics.RecordUserCreated()
		return user, nil
	}

	// Lost a create race with a concurrent first interaction.
	if errors.Is(err, repository.ErrUserExists) {
		user, err = s.userRepo.FindByTelegramID(ctx, cmd.TelegramID)
		if err != nil {
			return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return user, nil
	}

	return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
}

func (s *balanceService) GetBalance(ctx context.Context, telegramID int64) (decimal.Decimal, error) {
	user, err := s.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return decimal.Zero, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return decimal.Zero, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return user.Balance, nil
}

func (s *balanceService) Deduct(ctx context.Context, cmd DeductCommand) (model.User, error) {
	rows, err := s.userRepo.DeductBalance(ctx, cmd.TelegramID, cmd.AmountRub)
	if err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if rows == 0 {
		// Single conditional statement: distinguish a missing user from an
		// overdraw only for the error code.
		if _, err := s.userRepo.FindByTelegramID(ctx, cmd.TelegramID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return model.User{}, NewServiceError(constants.ErrCodeInsufficientBalance, errors.New("balance below requested amount"))
	}

	s.log.Info("Balance deducted",
		zap.Int64("telegram_id", cmd.TelegramID),
		zap.String("amount_rub", cmd.AmountRub.StringFixed(2)),
	)

	user, err := s.userRepo.FindByTelegramID(ctx, cmd.TelegramID)
	if err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return user, nil
}

func optional(value string, maxLen int) *string {
	if value == "" {
		return nil
	}
	runes := []rune(value)
	if len(runes) > maxLen {
		value = string(runes[:maxLen])
	}
	return &value
}
