package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/messaging"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	published []*nats.Msg
	err       error
	drained   bool
}

func (c *fakeConn) PublishMsg(msg *nats.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeConn) Drain() error {
	c.drained = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNATSPublisher_Publish(t *testing.T) {
	conn := &fakeConn{}
	publisher := messaging.NewNATSPublisher(conn, "notifications.received", discardLogger())

	extra := "pedido 42"
	err := publisher.Publish(context.Background(), messaging.Notification{
		Categoria:  true,
		Mensaje:    "hola",
		Adicional:  &extra,
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, conn.published, 1)

	msg := conn.published[0]
	assert.Equal(t, "notifications.received", msg.Subject)
	assert.NotEmpty(t, msg.Header.Get(nats.MsgIdHdr))

	var decoded messaging.Notification
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, msg.Header.Get(nats.MsgIdHdr), decoded.ID)
	assert.True(t, decoded.Categoria)
	assert.Equal(t, "hola", decoded.Mensaje)
	require.NotNil(t, decoded.Adicional)
	assert.Equal(t, "pedido 42", *decoded.Adicional)
}

func TestNATSPublisher_KeepsExplicitID(t *testing.T) {
	conn := &fakeConn{}
	publisher := messaging.NewNATSPublisher(conn, "s", discardLogger())

	require.NoError(t, publisher.Publish(context.Background(), messaging.Notification{ID: "fixed", Mensaje: "m"}))
	assert.Equal(t, "fixed", conn.published[0].Header.Get(nats.MsgIdHdr))
}

func TestNATSPublisher_Errors(t *testing.T) {
	conn := &fakeConn{err: nats.ErrConnectionClosed}
	publisher := messaging.NewNATSPublisher(conn, "s", discardLogger())

	err := publisher.Publish(context.Background(), messaging.Notification{Mensaje: "m"})
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = publisher.Publish(ctx, messaging.Notification{Mensaje: "m"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNATSPublisher_CloseDrains(t *testing.T) {
	conn := &fakeConn{}
	publisher := messaging.NewNATSPublisher(conn, "s", discardLogger())

	require.NoError(t, publisher.Close())
	assert.True(t, conn.drained)
}

func TestLogPublisher(t *testing.T) {
	publisher := messaging.NewLogPublisher(discardLogger())
	assert.NoError(t, publisher.Publish(context.Background(), messaging.Notification{Mensaje: "m"}))
	assert.NoError(t, publisher.Close())
}
