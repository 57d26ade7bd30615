// Package cli holds helpers for command tests. It lives apart from testutil
// so that testutil stays free of the CLI and app packages.
package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/app"
	appcli "github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/testutil"
)

// SetupCLITest starts a fake comment service and returns it with a CLI
// pointed at it. Config lookup is isolated to a temp dir.
func SetupCLITest(t *testing.T) (*testutil.CommentServer, *appcli.CLI) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CHARLA_BASE_URL", "")
	t.Setenv("CHARLA_THEME_FILE", "")

	server := testutil.NewCommentServer(t)
	ctx := context.Background()

	cliInstance, err := appcli.NewCLI(ctx,
		appcli.GlobalFlags{BaseURL: server.URL},
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("Failed to create CLI: %v", err)
	}

	return server, cliInstance
}

// ExecuteCLICommand runs cmd with args against cliInstance and returns stdout
func ExecuteCLICommand(t *testing.T, cliInstance *appcli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithStderr(t, cliInstance, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr runs cmd and returns stdout and stderr separately
func ExecuteCLICommandWithStderr(t *testing.T, cliInstance *appcli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if cliInstance == nil {
		t.Fatal("cliInstance cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	SetupCobraCommand(cmd, args)

	ctx := appcli.WithCLI(context.Background(), cliInstance)
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := testutil.DecodeJSON([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
