package v1

type EnsureUserRequest struct {
	TelegramID   int64  `json:"telegram_id" validate:"required"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

type GetUserBalanceRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
}

type DecreaseBalanceRequest struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	AmountRub  string `json:"amount_rub" validate:"required,amount"`
}

type CreatePaymentRequest struct {
	TelegramID       int64  `json:"telegram_id" validate:"required"`
	AmountRub        string `json:"amount_rub" validate:"required,amount"`
	CustomerFullName string `json:"customer_full_name"`
}
