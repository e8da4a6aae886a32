package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jacksrivastava/shortly/internal/ratelimit"
	"github.com/jacksrivastava/shortly/internal/service"
)

// Server represents the HTTP server
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
}

// NewServer creates a new HTTP server. The rate limiter guards only the
// shorten endpoint; redirects and reads are never rate limited.
func NewServer(links service.LinkService, limiter ratelimit.Limiter, port, baseURL string, verbose bool) *Server {
	handler := NewHandler(links, baseURL)

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	mux := http.NewServeMux()

	// API endpoints
	mux.Handle("/api/shorten", metrics.Instrument("shorten",
		RateLimitMiddleware(limiter, http.HandlerFunc(handler.Shorten))))
	mux.Handle("/api/links", metrics.Instrument("links", http.HandlerFunc(handler.ListLinks)))
	mux.Handle("/api/stats/", metrics.Instrument("stats", http.HandlerFunc(handler.GetStats)))

	// Operational endpoints
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Redirect endpoint (catch-all)
	mux.Handle("/", metrics.Instrument("redirect", http.HandlerFunc(handler.Redirect)))

	// Wrap with middlewares
	var finalHandler http.Handler = mux

	if verbose {
		loggingMiddleware := NewLoggingMiddleware(verbose)
		finalHandler = loggingMiddleware.Middleware(finalHandler)
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("Server starting on port %s", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Server shutting down...")
	return s.server.Shutdown(ctx)
}

// Port returns the server port
func (s *Server) Port() string {
	return s.port
}

// Handler returns the server handler (useful for testing)
func (s *Server) Handler() *Handler {
	return s.handler
}

// HTTPHandler returns the fully composed handler, middlewares included
// (useful for end-to-end tests against httptest)
func (s *Server) HTTPHandler() http.Handler {
	return s.server.Handler
}
