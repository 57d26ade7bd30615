package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/charla/internal/client"
	"github.com/thenoetrevino/charla/internal/config"
	"github.com/thenoetrevino/charla/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_UsesConfiguredBaseURL(t *testing.T) {
	cfg := config.Default()
	cfg.API.BaseURL = "http://comments.example:5000/"

	a, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)

	c, ok := a.API.(*client.Client)
	require.True(t, ok)
	assert.Equal(t, "http://comments.example:5000", c.BaseURL())
}

func TestNew_BaseURLOverride(t *testing.T) {
	cfg := config.Default()

	a, err := New(cfg, WithBaseURL("https://override.example"), WithBaseURL(""))
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", a.API.(*client.Client).BaseURL())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	cfg := config.Default()
	cfg.API.BaseURL = "not a url"

	_, err := New(cfg)
	assert.ErrorIs(t, err, client.ErrInvalidBaseURL)
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseURL, a.API.(*client.Client).BaseURL())
}

func TestNewController_AppliesUITimings(t *testing.T) {
	server := testutil.NewCommentServer(t)
	server.Seed(t, 1, "a", "one")
	server.Seed(t, 2, "b", "two")

	cfg := config.Default()
	cfg.API.BaseURL = server.URL
	cfg.UI.SuccessDuration = 20 * time.Millisecond
	disabled := time.Duration(0)
	cfg.UI.DeleteDelay = &disabled

	a, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)

	controller := a.NewController(2)
	t.Cleanup(controller.Close)
	ctx := context.Background()

	require.NoError(t, controller.Start(ctx))
	s := controller.Snapshot()
	require.Len(t, s.Comments, 1)
	assert.Equal(t, 2, s.FilterTaskID)

	require.NoError(t, controller.Delete(ctx, s.Comments[0].ID))
	assert.Eventually(t, func() bool {
		return controller.Snapshot().Success == ""
	}, time.Second, 5*time.Millisecond)
}

func TestAuthor(t *testing.T) {
	cfg := config.Default()
	cfg.UI.DefaultAuthor = "Asha"

	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Asha", a.Author())

	cfg.UI.DefaultAuthor = ""
	assert.NotEmpty(t, a.Author())
}
