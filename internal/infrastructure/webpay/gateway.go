package webpay

import (
	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
)

// NewGateway picks the in-memory sandbox or the real REST client from the
// configured environment.
func NewGateway(cfg config.WebpayConfig) application.GatewayClient {
	if cfg.Environment == config.EnvironmentSandbox {
		return NewSandbox(cfg.ResolveBaseURL())
	}
	return NewClient(cfg)
}
