package yookassa

import "errors"

var (
	ErrNotConfigured   = errors.New("YOOKASSA_NOT_CONFIGURED")
	ErrTimeout         = errors.New("YOOKASSA_TIMEOUT")
	ErrServerError     = errors.New("YOOKASSA_SERVER_ERROR")
	ErrInvalidResponse = errors.New("YOOKASSA_INVALID_RESPONSE")

	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrMissingObjectID = errors.New("missing object.id")
)
