// Package comment implements the "charla comment" subcommands.
package comment

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/cli"
	"github.com/thenoetrevino/charla/internal/client"
)

// CommentCmd returns the comment command group
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comment",
		Aliases: []string{"comments"},
		Short:   "Manage task comments",
		Long: `List, show, add, edit and delete comments on the comment service.

Every subcommand supports --json for agents and --quiet for shell capture.`,
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// commentList is the data payload of the list command
type commentList struct {
	TaskID   int              `json:"task_id,omitempty"`
	Count    int              `json:"count"`
	Comments []commentPayload `json:"comments"`
}

// commentPayload adds GetID to a comment for quiet output
type commentPayload struct {
	ID        int    `json:"id"`
	TaskID    int    `json:"task_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (c commentPayload) GetID() int {
	return c.ID
}

// deletedPayload is the data payload of the delete command
type deletedPayload struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (d deletedPayload) GetID() int {
	return d.ID
}

// setup resolves the CLI from the command context and builds the formatter.
// Initialization failures are reported through the formatter.
func setup(cmd *cobra.Command) (client.API, *cli.CLI, *cli.OutputFormatter, error) {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter, formatter.Fail(err, "Failed to initialize")
	}

	return cliInstance.App.API, cliInstance, formatter, nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
}
