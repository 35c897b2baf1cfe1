package handlers

import (
	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	BuyOrder  string          `json:"buy_order" validate:"required,max=26"`
	SessionID string          `json:"session_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required,gt=0,units"`
	ReturnURL string          `json:"return_url" validate:"required,url"`
}

// CreateTransactionResponse echoes the order alongside the gateway's token.
// Amount is what was actually sent, after truncation.
type CreateTransactionResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	URL       string `json:"url"`
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
}

type ConfirmTransactionRequest struct {
	Token string `json:"token" validate:"required"`
}

type RefundTransactionRequest struct {
	Token  string          `json:"token" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0,units"`
}

// NotificationRequest uses a pointer so an explicit false is accepted.
type NotificationRequest struct {
	Categoria *bool   `json:"categoria" validate:"required"`
	Mensaje   string  `json:"mensaje" validate:"required"`
	Adicional *string `json:"adicional"`
}

type NotificationResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Categoria bool    `json:"categoria"`
	Adicional *string `json:"adicional"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type PaymentMessageResponse struct {
	Data    string `json:"data"`
	Message string `json:"message"`
}

func newCreateTransactionResponse(req CreateTransactionRequest, result application.TransactionResult) CreateTransactionResponse {
	return CreateTransactionResponse{
		Success:   result.Success,
		Token:     result.Token,
		URL:       result.URL,
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    result.Amount,
	}
}
