package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/metrics"
	"github.com/shopspring/decimal"
)

const (
	opCreate = "create"
	opCommit = "commit"
	opStatus = "status"
	opRefund = "refund"
)

// PaymentService adapts the gateway into operations that never fail with a
// Go error or a panic: every outcome, good or bad, is a result value.
type PaymentService struct {
	gateway application.GatewayClient
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewPaymentService(
	gateway application.GatewayClient,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
	}
}

// Create opens a transaction and returns the token and the URL the payer
// must be sent to.
func (s *PaymentService) Create(ctx context.Context, buyOrder, sessionID string, amount decimal.Decimal, returnURL string) application.TransactionResult {
	units, err := application.ToCurrencyUnits(amount)
	if err != nil {
		s.logFailure(opCreate, err, "buy_order", buyOrder)
		return application.TransactionResult{
			Error: application.ErrorMessage(err),
			Kind:  application.ClassifyFailure(err),
		}
	}

	req := application.CreateTransaction{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    units,
		ReturnURL: returnURL,
	}

	created, err := call[application.CreatedTransaction](s, ctx, opCreate, func(ctx context.Context) (application.GatewayResponse, error) {
		return s.gateway.Create(ctx, req)
	})
	if err == nil && created.Token == "" {
		err = fmt.Errorf("malformed %s response: missing token", opCreate)
	}
	if err != nil {
		s.logFailure(opCreate, err, "buy_order", buyOrder)
		return application.TransactionResult{
			Error: application.ErrorMessage(err),
			Kind:  application.ClassifyFailure(err),
		}
	}

	s.logger.Info("transaction created", "buy_order", buyOrder, "amount", req.Amount)
	return application.TransactionResult{
		Success: true,
		Token:   created.Token,
		URL:     created.URL,
		Amount:  units,
	}
}

// Commit finalizes a transaction once the payer is back from the gateway.
func (s *PaymentService) Commit(ctx context.Context, token string) application.ConfirmationResult {
	return s.confirmation(ctx, opCommit, token, s.gateway.Commit)
}

// Status reads the gateway's view of a transaction without changing it.
func (s *PaymentService) Status(ctx context.Context, token string) application.ConfirmationResult {
	return s.confirmation(ctx, opStatus, token, s.gateway.Status)
}

func (s *PaymentService) Refund(ctx context.Context, token string, amount decimal.Decimal) application.RefundResult {
	units, err := application.ToCurrencyUnits(amount)
	if err != nil {
		s.logFailure(opRefund, err, "amount", amount.String())
		return application.RefundResult{
			Error: application.ErrorMessage(err),
			Kind:  application.ClassifyFailure(err),
		}
	}

	refund, err := call[application.Refund](s, ctx, opRefund, func(ctx context.Context) (application.GatewayResponse, error) {
		return s.gateway.Refund(ctx, token, units)
	})
	if err != nil {
		s.logFailure(opRefund, err, "amount", units)
		return application.RefundResult{
			Error: application.ErrorMessage(err),
			Kind:  application.ClassifyFailure(err),
		}
	}

	s.logger.Info("transaction refunded", "type", refund.Type, "amount", units)
	return application.RefundResult{
		Success: true,
		Refund:  refund,
	}
}

func (s *PaymentService) confirmation(
	ctx context.Context,
	operation, token string,
	fn func(ctx context.Context, token string) (application.GatewayResponse, error),
) application.ConfirmationResult {
	confirmation, err := call[application.Confirmation](s, ctx, operation, func(ctx context.Context) (application.GatewayResponse, error) {
		return fn(ctx, token)
	})
	if err != nil {
		s.logFailure(operation, err)
		return application.ConfirmationResult{
			Error: application.ErrorMessage(err),
			Kind:  application.ClassifyFailure(err),
		}
	}

	s.logger.Info("transaction "+operation,
		"buy_order", confirmation.BuyOrder,
		"status", confirmation.Status,
		"response_code", confirmation.ResponseCode,
	)
	return application.ConfirmationResult{
		Success:      true,
		Confirmation: confirmation,
	}
}

// call runs one gateway operation, turning panics into errors and decoding
// whichever response shape came back into T.
func call[T any](
	s *PaymentService,
	ctx context.Context,
	operation string,
	fn func(ctx context.Context) (application.GatewayResponse, error),
) (out *T, err error) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("gateway %s panicked: %v", operation, rec)
		}
		s.metrics.ObserveGatewayCall(operation, application.ClassifyFailure(err).String(), time.Since(start))
	}()

	resp, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	var decoded T
	if err := resp.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("malformed %s response (%s shape): %w", operation, resp.Shape(), err)
	}

	return &decoded, nil
}

func (s *PaymentService) logFailure(operation string, err error, args ...any) {
	args = append([]any{
		"operation", operation,
		"error", err,
		"kind", application.ClassifyFailure(err).String(),
	}, args...)
	s.logger.Warn("gateway operation failed", args...)
}
