package comment

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/store"
)

// EditCmd returns the comment edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the author or content of a comment",
		Long: `Edit the author and/or content of a comment.

Fields that are not passed keep their current value. ID, task and creation
time never change.

Examples:
  charla comment edit --id=3 --message="Updated text"
  charla comment edit --id=3 --author=bob
  charla comment edit --id=3 --author=bob --message="x" --json
`,
		RunE: runEdit,
	}

	cmd.Flags().Int("id", 0, "Comment ID (required)")
	markRequired(cmd, "id")

	cmd.Flags().String("author", "", "New author")
	cmd.Flags().String("message", "", "New content")
	cli.AddOutputFlags(cmd, "Minimal output (comment ID only)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	api, _, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt("id")
	authorChanged := cmd.Flags().Changed("author")
	messageChanged := cmd.Flags().Changed("message")
	if !authorChanged && !messageChanged {
		return formatter.Fail(cli.UsageError("nothing to update: pass --author and/or --message"), store.FallbackUpdate)
	}

	ctx := cmd.Context()

	current, err := api.Get(ctx, id)
	if err != nil {
		return formatter.Fail(err, store.FallbackUpdate)
	}

	author, content := current.Author, current.Content
	if authorChanged {
		author, _ = cmd.Flags().GetString("author")
	}
	if messageChanged {
		content, _ = cmd.Flags().GetString("message")
	}

	req, err := store.ValidateEdit(author, content)
	if err != nil {
		return formatter.Fail(err, store.FallbackUpdate)
	}

	updated, err := api.Update(ctx, id, req)
	if err != nil {
		return formatter.Fail(err, store.FallbackUpdate)
	}

	return formatter.Success(toPayload(*updated), func(w io.Writer) error {
		if err := renderDone(w, "Comment #%d updated", updated.ID); err != nil {
			return err
		}
		return renderCard(w, *updated)
	})
}
