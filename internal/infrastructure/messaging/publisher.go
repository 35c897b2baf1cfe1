package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Notification is the event published for every accepted notification.
type Notification struct {
	ID         string    `json:"id"`
	Categoria  bool      `json:"categoria"`
	Mensaje    string    `json:"mensaje"`
	Adicional  *string   `json:"adicional,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	PublishMsg(msg *nats.Msg) error
	Drain() error
}

type NATSPublisher struct {
	conn    Conn
	subject string
	logger  *slog.Logger
}

// Connect dials the NATS server at url. The connection keeps reconnecting in
// the background for as long as the process lives.
func Connect(url, subject string, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(
		url,
		nats.Name("webpay-gateway"),
		nats.ReconnectWait(3*time.Second),
		nats.MaxReconnects(-1),
		nats.PingInterval(10*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	logger.Info("connected to nats", "url", url, "subject", subject)
	return NewNATSPublisher(nc, subject, logger), nil
}

func NewNATSPublisher(conn Conn, subject string, logger *slog.Logger) *NATSPublisher {
	return &NATSPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// Publish sends n with a unique Nats-Msg-Id so a JetStream-backed subject
// can de-duplicate redeliveries.
func (p *NATSPublisher) Publish(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Header.Set(nats.MsgIdHdr, n.ID)
	msg.Header.Set("Content-Type", "application/json")
	msg.Data = data

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Debug("notification published", "id", n.ID, "subject", p.subject)
	return nil
}

func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, n Notification) error {
	p.logger.Info("notification received",
		"id", n.ID,
		"categoria", n.Categoria,
		"mensaje", n.Mensaje,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
