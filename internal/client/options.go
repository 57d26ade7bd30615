package client

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds every request when no timeout is configured
const DefaultTimeout = 10 * time.Second

// Option is a functional option for configuring a Client
type Option func(*clientConfig)

// clientConfig holds the configuration for Client initialization
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithHTTPClient sets the HTTP client used for requests.
// Its Timeout is left untouched unless WithTimeout is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *clientConfig) {
		cfg.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) {
		cfg.timeout = d
	}
}

// WithLogger sets the logger for request logging
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithTracer sets the tracer used to create request spans
func WithTracer(tracer trace.Tracer) Option {
	return func(cfg *clientConfig) {
		cfg.tracer = tracer
	}
}
