package v1

import (
	"errors"

	"github.com/adalchemy/billing/internal/api/contract"
	"github.com/adalchemy/billing/internal/api/validator"
	"github.com/adalchemy/billing/internal/constants"
	"github.com/adalchemy/billing/internal/metrics"
	"github.com/adalchemy/billing/internal/service"
	"github.com/adalchemy/billing/pkg/yookassa"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	balance    service.BalanceService
	topUp      service.TopUpService
	settlement service.SettlementService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
}

func NewHandler(
	logger *zap.Logger,
	balance service.BalanceService,
	topUp service.TopUpService,
	settlement service.SettlementService,
	XValidator validator.IXValidator,
	metrics *metrics.Metrics,
) *Handler {
	return &Handler{
		logger:     logger,
		balance:    balance,
		topUp:      topUp,
		settlement: settlement,
		XValidator: XValidator,
		metrics:    metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// YookassaWebhook handles payment-event notifications. Responses follow the
// processor's retry semantics: anything acknowledged with a 200 will not be
// redelivered, so no-ops must answer ok and only persistence failures may
// answer 500.
func (h *Handler) YookassaWebhook(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
	}

	event, err := yookassa.ParseWebhookEvent(c.Body())
	if err != nil {
		if errors.Is(err, yookassa.ErrMissingObjectID) {
			h.metrics.RecordWebhookEvent(yookassa.EventPaymentSucceeded, "missing_id")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing object.id"})
		}
		h.logger.Warn("YooKassa webhook invalid JSON", zap.Error(err))
		h.metrics.RecordWebhookEvent("unknown", "invalid_json")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if !event.IsSettlement() {
		h.metrics.RecordWebhookEvent(event.Type, "ignored")
		return c.JSON(fiber.Map{"status": "ignored"})
	}

	// Unknown ids and duplicate deliveries settle as no-ops and still
	// answer ok; only persistence failures escalate.
	_, err = h.settlement.Settle(c.UserContext(), event.PaymentID)
	if err != nil {
		h.logger.Error("Settlement failed",
			zap.String("yookassa_payment_id", event.PaymentID),
			zap.Error(err),
		)
		h.metrics.RecordWebhookEvent(event.Type, "error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB update failed"})
	}

	h.metrics.RecordWebhookEvent(event.Type, "ok")
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) EnsureUser(c *fiber.Ctx) error {
	var handlerRequest EnsureUserRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	user, err := h.balance.EnsureUser(c.UserContext(), service.EnsureUserCommand{
		TelegramID:   handlerRequest.TelegramID,
		FirstName:    handlerRequest.FirstName,
		LastName:     handlerRequest.LastName,
		Username:     handlerRequest.Username,
		LanguageCode: handlerRequest.LanguageCode,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: balanceResult{
		TelegramID: user.TelegramID,
		BalanceRub: user.Balance.StringFixed(2),
	}})
}

func (h *Handler) GetUserBalance(c *fiber.Ctx) error {
	var handlerRequest GetUserBalanceRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	balance, err := h.balance.GetBalance(c.UserContext(), handlerRequest.TelegramID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: balanceResult{
		TelegramID: handlerRequest.TelegramID,
		BalanceRub: balance.StringFixed(2),
	}})
}

func (h *Handler) DecreaseUserBalance(c *fiber.Ctx) error {
	var handlerRequest DecreaseBalanceRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, err := decimal.NewFromString(handlerRequest.AmountRub)
	if err != nil {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	user, err := h.balance.Deduct(c.UserContext(), service.DeductCommand{
		TelegramID: handlerRequest.TelegramID,
		AmountRub:  amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Message: "balance updated", Result: balanceResult{
		TelegramID: user.TelegramID,
		BalanceRub: user.Balance.StringFixed(2),
	}})
}

func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	var handlerRequest CreatePaymentRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, err := decimal.NewFromString(handlerRequest.AmountRub)
	if err != nil {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	result, err := h.topUp.InitiateTopUp(c.UserContext(), service.TopUpCommand{
		TelegramID:       handlerRequest.TelegramID,
		AmountRub:        amount,
		CustomerFullName: handlerRequest.CustomerFullName,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Message: "payment created", Result: result})
}

type balanceResult struct {
	TelegramID int64  `json:"telegram_id"`
	BalanceRub string `json:"balance_rub"`
}
