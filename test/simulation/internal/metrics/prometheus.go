package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusServer serves Prometheus metrics via HTTP.
//
// The optimizer's collector registers against the default registerer, so the
// standard promhttp handler exposes everything the simulation records.
type PrometheusServer struct {
	addr   string
	server *http.Server
}

// NewPrometheusServer creates a new Prometheus metrics server.
//
// Parameters:
//   - addr: Address to listen on (e.g., ":9090")
//
// Returns:
//   - *PrometheusServer: Initialized server
func NewPrometheusServer(addr string) *PrometheusServer {
	return &PrometheusServer{addr: addr}
}

// Start starts the Prometheus HTTP server and blocks until ctx is cancelled.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: Error if the server fails to start or shut down
func (s *PrometheusServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", s.healthHandler)

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("[Metrics] Starting Prometheus server on %s", s.addr)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Metrics] Server error: %v", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server.
//
// Returns:
//   - error: Error if shutdown fails
func (s *PrometheusServer) Shutdown() error {
	log.Println("[Metrics] Shutting down Prometheus server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// healthHandler handles health check requests.
func (s *PrometheusServer) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK\n")
}
