package cmd

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/tui"
)

// TUICmd returns the command that opens the terminal UI
func TUICmd() *cobra.Command {
	var taskID int

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Long: `Open the interactive comment browser.

Examples:
  # All comments
  charla tui

  # Comments of task 42
  charla tui --task 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if taskID < 0 {
				return cli.NewFormatter(cmd).Fail(cli.UsageError("--task must be a positive number"), "Invalid task")
			}
			return runTUI(cmd, taskID)
		},
	}

	cmd.Flags().IntVar(&taskID, "task", 0, "Only show comments of this task")
	return cmd
}

func runTUI(cmd *cobra.Command, taskID int) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	err = tui.Run(ctx, cliInstance.App, taskID)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return cli.NewFormatter(cmd).Fail(err, "Terminal UI failed")
	}
	return nil
}
