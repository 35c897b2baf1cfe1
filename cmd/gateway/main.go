package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/messaging"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/webpay"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/webpay-gateway/internal/metrics"
	"github.com/DanielPopoola/webpay-gateway/internal/server"
)

var version = "dev"

type publisher interface {
	handlers.NotificationPublisher
	Close() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"version", version,
		"port", cfg.Server.Port,
		"environment", cfg.Webpay.Environment,
		"log_level", cfg.Logger.Level,
	)

	gateway := webpay.NewGateway(cfg.Webpay)
	m := metrics.New()
	paymentService := services.NewPaymentService(gateway, m, logger)

	var notifications publisher = messaging.NewLogPublisher(logger)
	if cfg.Notifications.NATSURL != "" {
		natsPublisher, err := messaging.Connect(cfg.Notifications.NATSURL, cfg.Notifications.Subject, logger)
		if err != nil {
			logger.Error("failed to connect to nats", "error", err)
			os.Exit(1)
		}
		notifications = natsPublisher
	}
	defer notifications.Close()

	handler := server.NewHandler(server.Dependencies{
		Payments:       paymentService,
		Notifications:  notifications,
		Metrics:        m,
		Version:        version,
		RequestTimeout: cfg.Server.RequestTimeout,
		Logger:         logger,
	})

	srv := server.New(cfg.Server, handler)

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
