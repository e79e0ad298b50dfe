// Package api - Thin HTTP layer over the fare engine
// The API is only responsible for input decoding, engine orchestration,
// and output serialization. It never performs fare logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"ride-pricing/core/fare"
	"ride-pricing/internal/config"
	"ride-pricing/internal/metrics"
)

// Server is the API server
type Server struct {
	engine  *fare.Engine
	cfg     *config.Config
	version string
	mux     *http.ServeMux
	handler http.Handler
}

// NewServer creates the API server around a fare engine
func NewServer(cfg *config.Config, engine *fare.Engine, version string) *Server {
	s := &Server{
		engine:  engine,
		cfg:     cfg,
		version: version,
		mux:     http.NewServeMux(),
	}

	s.registerRoutes()

	// Middleware chain, outermost first: CORS, trace id resolution,
	// request logging + metrics, panic recovery.
	h := http.Handler(s.mux)
	h = withRecovery(h)
	h = withObservability(h)
	h = withTrace(h)
	h = cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})(h)
	s.handler = h

	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /price", s.handlePrice)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /readyz", s.handleReady)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.Handle("GET /metrics", metrics.Handler())
}

// handleHealth handles GET /healthz; it has no engine dependency
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   config.ServiceName,
	}, http.StatusOK)
}

// handleReady handles GET /readyz
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, ReadyResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Config: ReadyConfig{
			BasePrice:      s.cfg.BasePrice,
			PricePerKm:     s.cfg.PricePerKm,
			PricePerMinute: s.cfg.PricePerMinute,
		},
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, VersionResponse{
		Version: s.version,
		Service: config.ServiceName,
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
