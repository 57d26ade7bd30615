package comment

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
)

// ShowCmd returns the comment show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single comment",
		Long: `Show a single comment with its content rendered as markdown.

Examples:
  charla comment show --id=3
  charla comment show --id=3 --json
`,
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Comment ID (required)")
	markRequired(cmd, "id")
	cli.AddOutputFlags(cmd, "Minimal output (comment ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	api, _, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt("id")

	comment, err := api.Get(cmd.Context(), id)
	if err != nil {
		return formatter.Fail(err, "Failed to load comment")
	}

	return formatter.Success(toPayload(*comment), func(w io.Writer) error {
		return renderCard(w, *comment)
	})
}
