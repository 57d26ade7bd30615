// Package cmd wires the charla command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/app"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/cli/comment"
	"github.com/thenoetrevino/charla/internal/logging"
)

// rootCommand is the command tree plus the log file its pre-run opened
type rootCommand struct {
	cmd       *cobra.Command
	logCloser io.Closer
}

// newRoot builds the charla command tree. Without a subcommand it runs the TUI.
func newRoot() *rootCommand {
	var flags cli.GlobalFlags
	r := &rootCommand{}

	rootCmd := &cobra.Command{
		Use:   "charla",
		Short: "Charla - task comments from the terminal",
		Long: `Charla reads and writes task comments on a comment service.

Run without a subcommand to open the terminal UI, or use "charla comment"
for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Tests inject a ready CLI through the context
			if _, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
				return nil
			}

			closer, err := logging.Init()
			if err != nil {
				logging.Discard()
			} else {
				r.logCloser = closer
			}

			cliInstance, err := cli.NewCLI(cmd.Context(), flags, app.WithLogger(logging.Logger))
			if err != nil {
				return cli.NewFormatter(cmd).Fail(err, "Failed to initialize")
			}
			cmd.SetContext(cli.WithCLI(cmd.Context(), cliInstance))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, 0)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.BaseURL, "base-url", "", "Comment service URL (overrides config and CHARLA_BASE_URL)")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "Request timeout, e.g. 5s (overrides config)")
	pf.StringVar(&flags.ConfigPath, "config", "", "Path to the config file")

	rootCmd.AddCommand(TUICmd())
	rootCmd.AddCommand(comment.CommentCmd())

	r.cmd = rootCmd
	return r
}

// run executes the tree and closes the log file whether or not a command failed
func (r *rootCommand) run(ctx context.Context) error {
	defer r.closeLog()
	return r.cmd.ExecuteContext(ctx)
}

func (r *rootCommand) closeLog() {
	if r.logCloser == nil {
		return
	}
	if err := r.logCloser.Close(); err != nil {
		fmt.Fprintf(r.cmd.ErrOrStderr(), "Warning: closing log file: %v\n", err)
	}
}

// Execute runs the command tree. Errors that were not already reported by a
// command (flag parsing, unknown commands) are printed here and carry the
// usage exit code.
func Execute(ctx context.Context, args []string) error {
	root := newRoot()
	root.cmd.SetArgs(args)

	err := root.run(ctx)
	if err == nil {
		return nil
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	fmt.Fprintf(root.cmd.ErrOrStderr(), "Error: %v\nRun 'charla --help' for usage.\n", err)
	return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
}
