package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/thenoetrevino/charla/internal/client"
	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	baseURL    string
	timeout    time.Duration
	api        client.API
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
}

// WithBaseURL overrides the configured service URL. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(cfg *appConfig) {
		if baseURL != "" {
			cfg.baseURL = baseURL
		}
	}
}

// WithTimeout overrides the configured request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(cfg *appConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithAPI replaces the HTTP client with another API implementation
func WithAPI(api client.API) Option {
	return func(cfg *appConfig) {
		cfg.api = api
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithTracer sets the tracer for request spans
func WithTracer(tracer trace.Tracer) Option {
	return func(cfg *appConfig) {
		cfg.tracer = tracer
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
