package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/charla/internal/client"
	"github.com/thenoetrevino/charla/internal/config"
	"github.com/thenoetrevino/charla/internal/store"
	"github.com/thenoetrevino/charla/internal/user"
)

// App holds the comment service client and builds controllers from config.
// This is the main application container shared by the CLI and the TUI.
type App struct {
	Config *config.Config

	// API is the comment service client
	API client.API

	logger *slog.Logger
}

// New creates an App from cfg. Options override the config values.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := appConfig{
		baseURL: cfg.API.BaseURL,
		timeout: cfg.API.Timeout,
	}
	for _, opt := range opts {
		opt(&ac)
	}

	logger := ac.logger
	if logger == nil {
		logger = slog.Default()
	}

	api := ac.api
	if api == nil {
		clientOpts := []client.Option{
			client.WithLogger(logger),
			client.WithTimeout(ac.timeout),
		}
		if ac.httpClient != nil {
			clientOpts = append(clientOpts, client.WithHTTPClient(ac.httpClient))
		}
		if ac.tracer != nil {
			clientOpts = append(clientOpts, client.WithTracer(ac.tracer))
		}

		c, err := client.New(ac.baseURL, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create comment client: %w", err)
		}
		api = c
	}

	return &App{
		Config: cfg,
		API:    api,
		logger: logger,
	}, nil
}

// NewController creates a comment store controller using the UI timings
// from the config. taskID > 0 starts with a task filter.
func (a *App) NewController(taskID int) *store.Controller {
	ui := a.Config.UI
	return store.New(a.API,
		store.WithLogger(a.logger),
		store.WithFilter(taskID),
		store.WithSuccessDuration(ui.SuccessDuration),
		store.WithHighlightDuration(ui.HighlightDuration),
		store.WithDeleteDelay(ui.GetDeleteDelay()),
	)
}

// Author returns the default author for new comments
func (a *App) Author() string {
	return user.ResolveAuthor(a.Config.UI.DefaultAuthor)
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}
