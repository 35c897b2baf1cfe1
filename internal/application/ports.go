package application

import (
	"context"
)

// GatewayClient is the port for the external payment gateway.
type GatewayClient interface {
	Create(ctx context.Context, req CreateTransaction) (GatewayResponse, error)
	Commit(ctx context.Context, token string) (GatewayResponse, error)
	Status(ctx context.Context, token string) (GatewayResponse, error)
	Refund(ctx context.Context, token string, amount int64) (GatewayResponse, error)
}

// CreateTransaction is what the gateway needs to open a transaction.
// Amount is already expressed in whole currency units.
type CreateTransaction struct {
	BuyOrder  string
	SessionID string
	Amount    int64
	ReturnURL string
}
