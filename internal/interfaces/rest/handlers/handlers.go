package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/messaging"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

type PaymentService interface {
	Create(ctx context.Context, buyOrder, sessionID string, amount decimal.Decimal, returnURL string) application.TransactionResult
	Commit(ctx context.Context, token string) application.ConfirmationResult
	Status(ctx context.Context, token string) application.ConfirmationResult
	Refund(ctx context.Context, token string, amount decimal.Decimal) application.RefundResult
}

type NotificationPublisher interface {
	Publish(ctx context.Context, n messaging.Notification) error
}

type Handlers struct {
	payments      PaymentService
	notifications NotificationPublisher
	validate      *validator.Validate
	pages         *pages
	version       string
	logger        *slog.Logger
}

func NewHandlers(
	payments PaymentService,
	notifications NotificationPublisher,
	version string,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		payments:      payments,
		notifications: notifications,
		validate:      rest.NewValidator(),
		pages:         mustParsePages(),
		version:       version,
		logger:        logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.HandleRoot)
	mux.HandleFunc("GET /health", h.HandleHealth)

	mux.HandleFunc("POST /payments/create", h.HandleCreate)
	mux.HandleFunc("POST /payments/confirm", h.HandleConfirm)
	mux.HandleFunc("GET /payments/status/{token}", h.HandleStatus)
	mux.HandleFunc("POST /payments/refund", h.HandleRefund)
	mux.HandleFunc("GET /payment/callback", h.HandleCallback)

	mux.HandleFunc("POST /notifications", h.HandleNotification)
	mux.HandleFunc("GET /mensajePago/{id}", h.HandlePaymentMessage)
}

// decodeAndValidate writes the 400 itself and reports whether the handler
// should go on.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := rest.DecodeJSON(w, r, dst); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		rest.WriteValidationError(w, err)
		return false
	}
	return true
}
