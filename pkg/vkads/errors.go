package vkads

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout     = errors.New("VK_ADS_TIMEOUT")
	ErrOAuthFailed = errors.New("VK_OAUTH_FAILED")
	ErrServerError = errors.New("VK_ADS_SERVER_ERROR")
)

// APIError is the error envelope VK returns with a 200 status.
type APIError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vk ads api error %d: %s", e.Code, e.Message)
}
