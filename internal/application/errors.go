package application

import (
	"context"
	"errors"
)

// Rejection is implemented by gateway errors that can tell a deliberate
// refusal apart from an infrastructure failure.
type Rejection interface {
	error
	IsRejection() bool
}

// ClassifyFailure decides how a gateway call failure is surfaced.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureUnavailable
	}

	if errors.Is(err, ErrAmountOutOfRange) {
		return FailureRejected
	}

	var rejection Rejection
	if errors.As(err, &rejection) && rejection.IsRejection() {
		return FailureRejected
	}

	return FailureUnavailable
}

// ErrorMessage never returns an empty string so failed results always
// carry something to show.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown gateway error"
}
