package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const (
	EnvironmentIntegration = "integration"
	EnvironmentProduction  = "production"
	EnvironmentSandbox     = "sandbox"

	IntegrationBaseURL = "https://webpay3gint.transbank.cl"
	ProductionBaseURL  = "https://webpay3g.transbank.cl"

	// Public Webpay Plus integration credentials.
	IntegrationCommerceCode = "597055555532"
	IntegrationAPIKey       = "579B532A7440BB0C9079DED94D31EA161EBE3BBA"
)

type Config struct {
	Primary       Primary             `koanf:"primary"`
	Server        ServerConfig        `koanf:"server"`
	Webpay        WebpayConfig        `koanf:"webpay"`
	Logger        LoggerConfig        `koanf:"logger"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required,gtfield=RequestTimeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type WebpayConfig struct {
	Environment  string        `koanf:"environment" validate:"required,oneof=integration production sandbox"`
	CommerceCode string        `koanf:"commerce_code" validate:"required"`
	APIKey       string        `koanf:"api_key" validate:"required"`
	BaseURL      string        `koanf:"base_url" validate:"omitempty,url"`
	Timeout      time.Duration `koanf:"timeout" validate:"required"`
}

// ResolveBaseURL returns the explicit base URL or the one belonging to the
// configured environment.
func (c WebpayConfig) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Environment == EnvironmentProduction {
		return ProductionBaseURL
	}
	return IntegrationBaseURL
}

type NotificationsConfig struct {
	NATSURL string `koanf:"nats_url" validate:"omitempty,url"`
	Subject string `koanf:"subject" validate:"required"`
}

var defaults = map[string]interface{}{
	"primary.env":            "development",
	"server.port":            "8000",
	"server.read_timeout":    "10s",
	"server.write_timeout":   "30s",
	"server.idle_timeout":    "60s",
	"server.request_timeout": "25s",
	"webpay.environment":     EnvironmentIntegration,
	"webpay.commerce_code":   IntegrationCommerceCode,
	"webpay.api_key":         IntegrationAPIKey,
	"webpay.timeout":         "20s",
	"logger.level":           "info",
	"logger.format":          "text",
	"notifications.subject":  "notifications.received",
}

// Unprefixed variable names kept for deployments that predate GATEWAY_*.
var legacyEnv = map[string]string{
	"PORT":                    "server.port",
	"TRANSBANK_COMMERCE_CODE": "webpay.commerce_code",
	"TRANSBANK_API_KEY":       "webpay.api_key",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnv[s]
	}), nil)
	if err != nil {
		logger.Error("failed to load legacy environment variables", "error", err)
		return nil, err
	}

	err = k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	err = mainConfig.checkTimeouts()
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// checkTimeouts completes webpay.timeout < server.request_timeout <
// server.write_timeout, so every request is answered before the write
// deadline. The second half is the gtfield tag on ServerConfig.
func (c *Config) checkTimeouts() error {
	if c.Webpay.Timeout >= c.Server.RequestTimeout {
		return fmt.Errorf("webpay.timeout (%s) must be shorter than server.request_timeout (%s)",
			c.Webpay.Timeout, c.Server.RequestTimeout)
	}
	return nil
}
