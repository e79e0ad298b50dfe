// Package api - HTTP middleware
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"ride-pricing/internal/logging"
	"ride-pricing/internal/metrics"
	"ride-pricing/internal/trace"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// traceIDFrom returns the trace id resolved by withTrace
func traceIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey).(string); ok {
		return v
	}
	return ""
}

// withTrace resolves the request trace id, echoes it on the response,
// and makes it available to handlers through the context.
func withTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := trace.Resolve(r.Header.Get(trace.Header))
		w.Header().Set(trace.Header, traceID)
		ctx := context.WithValue(r.Context(), traceIDKey, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// knownMetricPaths is the fixed label set for request metrics; anything
// else collapses into one bucket so arbitrary URLs cannot grow the
// label cardinality.
var knownMetricPaths = map[string]struct{}{
	"/price":   {},
	"/healthz": {},
	"/readyz":  {},
	"/version": {},
	"/metrics": {},
}

func metricPath(path string) string {
	if _, ok := knownMetricPaths[path]; ok {
		return path
	}
	return "other"
}

// statusRecorder captures the response status for logging and metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withObservability logs each request and records prometheus metrics
func withObservability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		path := metricPath(r.URL.Path)
		metrics.RequestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(path).Observe(elapsed.Seconds())

		logging.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
			zap.String("trace_id", traceIDFrom(r.Context())),
		)
	})
}

// withRecovery converts a panicking handler into a 500 envelope.
// A fault in one request must not affect any other.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				traceID := traceIDFrom(r.Context())
				logging.Error("request panicked",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("trace_id", traceID),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(Envelope{
					Error:   &ErrorBody{Code: codeInternalError, Message: "internal error"},
					TraceID: traceID,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
