// Package metrics exposes prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by path, method and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"path", "method", "status"})

	// RequestDuration observes request handling latency
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// QuotesTotal counts successful fare quotes by vehicle class
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_quotes_total",
		Help: "Successful fare quotes.",
	}, []string{"vehicle_class"})
)

// Handler returns the prometheus exposition handler
func Handler() http.Handler {
	return promhttp.Handler()
}
