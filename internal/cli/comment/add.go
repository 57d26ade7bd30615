package comment

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/store"
)

// AddCmd returns the comment add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comment to a task",
		Long: `Add a comment to a task.

Author and message are trimmed; blank values are rejected before any request
is sent. The author defaults to ui.default_author from the config, then to the
current user.

Examples:
  # Add a comment to task 42
  charla comment add --task=42 --message="Need to follow up with team"

  # Custom author
  charla comment add --task=42 --message="Looks good" --author=asha

  # JSON output for agents
  charla comment add --task=42 --message="Investigation complete" --json

  # Quiet mode for bash capture
  COMMENT_ID=$(charla comment add --task=42 --message="Fixed" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().Int("task", 0, "Task ID (required)")
	cmd.Flags().String("message", "", "Comment content (required)")
	markRequired(cmd, "task", "message")

	cmd.Flags().String("author", "", "Comment author (defaults to current user)")
	cli.AddOutputFlags(cmd, "Minimal output (comment ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	api, cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetInt("task")
	message, _ := cmd.Flags().GetString("message")
	author, _ := cmd.Flags().GetString("author")

	if !cmd.Flags().Changed("author") {
		author = cliInstance.App.Author()
	}

	req, err := store.ValidateCreate(store.CreateInput{
		TaskID:  taskID,
		Author:  author,
		Content: message,
	})
	if err != nil {
		return formatter.Fail(err, store.FallbackCreate)
	}

	created, err := api.Create(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err, store.FallbackCreate)
	}

	return formatter.Success(toPayload(*created), func(w io.Writer) error {
		if err := renderDone(w, "Comment #%d added to task %d", created.ID, created.TaskID); err != nil {
			return err
		}
		return renderCard(w, *created)
	})
}
