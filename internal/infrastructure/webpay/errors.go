package webpay

import (
	"fmt"
	"net/http"
)

// GatewayError is a non-2xx answer from Webpay.
type GatewayError struct {
	StatusCode int
	Message    string
}

type gatewayErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("webpay error: %s (status: %d)", e.Message, e.StatusCode)
}

// IsRejection is true when Webpay refused the operation itself, as opposed
// to failing to process it.
func (e *GatewayError) IsRejection() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

func rejected(message string) *GatewayError {
	return &GatewayError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    message,
	}
}
