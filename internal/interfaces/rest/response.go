package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed JSON response.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// WriteFailure writes a failed gateway result with the status its kind maps to.
func WriteFailure(w http.ResponseWriter, kind application.FailureKind, message string) {
	WriteError(w, StatusFor(kind), message)
}

// StatusFor maps a failure kind to an HTTP status. Rejections are the
// caller's problem; anything else is ours.
func StatusFor(kind application.FailureKind) int {
	switch kind {
	case application.FailureNone:
		return http.StatusOK
	case application.FailureRejected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads a single JSON object from the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid request body: unexpected data after JSON object")
	}
	return nil
}
