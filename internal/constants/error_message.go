package constants

import "github.com/gofiber/fiber/v2"

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeUserExisted         = "USER_ALREADY_EXISTS"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeTokenInvalid        = "TOKEN_INVALID"
	ErrCodeTokenExpired        = "TOKEN_EXPIRED"
	ErrCodeNoSession           = "NO_SESSION"
	ErrCodeOAuthFailed         = "OAUTH_FAILED"
	ErrCodePublishFailed       = "PUBLISH_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeUserExisted:         "user already exists",
	ErrCodeUserNotFound:        "user not found",
	ErrCodeInsufficientBalance: "insufficient balance",
	ErrCodeOperationFailed:     "operation failed",
	ErrCodeProviderUnavailable: "payment provider unavailable",
	ErrCodeTokenInvalid:        "campaign token is invalid",
	ErrCodeTokenExpired:        "campaign token has expired",
	ErrCodeNoSession:           "no authenticated VK session",
	ErrCodeOAuthFailed:         "VK authorization failed",
	ErrCodePublishFailed:       "campaign publishing failed",
	ErrCodeInternalError:       "internal error",
}

var errorStatuses = map[string]int{
	ErrCodeUserExisted:         fiber.StatusConflict,
	ErrCodeUserNotFound:        fiber.StatusNotFound,
	ErrCodeInsufficientBalance: fiber.StatusConflict,
	ErrCodeOperationFailed:     fiber.StatusInternalServerError,
	ErrCodeProviderUnavailable: fiber.StatusBadGateway,
	ErrCodeTokenInvalid:        fiber.StatusUnauthorized,
	ErrCodeTokenExpired:        fiber.StatusUnauthorized,
	ErrCodeNoSession:           fiber.StatusUnauthorized,
	ErrCodeOAuthFailed:         fiber.StatusBadGateway,
	ErrCodePublishFailed:       fiber.StatusBadGateway,
	ErrCodeInternalError:       fiber.StatusInternalServerError,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}

func GetHTTPStatus(code string) int {
	status, exists := errorStatuses[code]
	if !exists {
		return fiber.StatusInternalServerError
	}
	return status
}
