package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/webpay-gateway/internal/metrics"
)

type Dependencies struct {
	Payments       handlers.PaymentService
	Notifications  handlers.NotificationPublisher
	Metrics        *metrics.Metrics
	Version        string
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewHandler builds the routed, fully wrapped HTTP handler.
func NewHandler(deps Dependencies) http.Handler {
	h := handlers.NewHandlers(deps.Payments, deps.Notifications, deps.Version, deps.Logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	api.RegisterDocsRoutes(mux)
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	handler := middleware.Recovery(deps.Logger)(mux)
	handler = middleware.Metrics(deps.Metrics)(handler)
	handler = middleware.Timeout(deps.RequestTimeout)(handler)
	handler = middleware.Logging(deps.Logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

func New(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
