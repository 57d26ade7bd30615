package comment

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/store"
)

// DeleteCmd returns the comment delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a comment",
		Long: `Delete a comment. Deleting an unknown ID exits with code 3.

Examples:
  charla comment delete --id=3
  charla comment delete --id=3 --json
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Comment ID (required)")
	markRequired(cmd, "id")
	cli.AddOutputFlags(cmd, "Minimal output (comment ID only)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	api, _, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt("id")

	if err := api.Delete(cmd.Context(), id); err != nil {
		return formatter.Fail(err, store.FallbackDelete)
	}

	return formatter.Success(deletedPayload{ID: id, Deleted: true}, func(w io.Writer) error {
		return renderDone(w, "Comment #%d deleted", id)
	})
}
