package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveGatewayCall(t *testing.T) {
	m := metrics.New()

	m.ObserveGatewayCall("commit", "ok", 120*time.Millisecond)
	m.ObserveGatewayCall("commit", "ok", 80*time.Millisecond)
	m.ObserveGatewayCall("commit", "unavailable", time.Second)

	count, err := testutil.GatherAndCount(m.Registry(), "webpay_gateway_gateway_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_HandlerExposesSeries(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("POST /payments/create", http.StatusOK, 15*time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), `webpay_gateway_http_requests_total{code="200",route="POST /payments/create"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET /health", http.StatusOK, time.Millisecond)
		m.ObserveGatewayCall("create", "ok", time.Millisecond)
	})
	assert.Nil(t, m.Registry())

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
