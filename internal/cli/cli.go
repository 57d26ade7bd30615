package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/charla/internal/app"
	"github.com/thenoetrevino/charla/internal/cli/styles"
	"github.com/thenoetrevino/charla/internal/config"
)

// GlobalFlags are the persistent flags shared by every command
type GlobalFlags struct {
	BaseURL    string
	Timeout    time.Duration
	ConfigPath string
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the comment client
	ctx context.Context
}

// NewCLI loads the config and builds the application container.
// Flags take precedence over the config file and environment.
func NewCLI(ctx context.Context, flags GlobalFlags, opts ...app.Option) (*CLI, error) {
	cfg, err := loadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	styles.Init(cfg.ColorScheme)

	appOpts := append([]app.Option{
		app.WithBaseURL(flags.BaseURL),
		app.WithTimeout(flags.Timeout),
	}, opts...)

	application, err := app.New(cfg, appOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
