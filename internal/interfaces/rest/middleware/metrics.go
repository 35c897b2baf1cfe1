package middleware

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern. It must sit
// between the timeout handler and the mux so the matched pattern is visible
// once the request has been served.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			defer func() {
				route := r.Pattern
				if route == "" {
					route = unmatchedRoute
				}
				m.ObserveRequest(route, rw.statusCode, time.Since(start))
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
