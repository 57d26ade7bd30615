package comment

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/store"
)

// ListCmd returns the comment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List comments, newest first",
		Long: `List comments in the order returned by the service (newest first).

Examples:
  # All comments
  charla comment list

  # Comments of task 42
  charla comment list --task=42

  # JSON output for agents
  charla comment list --task=42 --json

  # Only IDs, one per line
  charla comment list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().Int("task", 0, "Only show comments of this task")
	cli.AddOutputFlags(cmd, "Minimal output (comment IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	api, _, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetInt("task")
	if taskID < 0 {
		return formatter.Fail(cli.UsageError("--task must be a positive task ID, got %d", taskID), store.FallbackLoad)
	}

	comments, err := api.List(cmd.Context(), taskID)
	if err != nil {
		return formatter.Fail(err, store.FallbackLoad)
	}

	if formatter.Quiet {
		for _, c := range comments {
			if _, err := fmt.Fprintf(formatter.Out, "%d\n", c.ID); err != nil {
				return err
			}
		}
		return nil
	}

	data := commentList{
		TaskID:   taskID,
		Count:    len(comments),
		Comments: toPayloads(comments),
	}
	return formatter.Success(data, func(w io.Writer) error {
		return renderTable(w, comments)
	})
}
