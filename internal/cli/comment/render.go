package comment

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/charla/internal/cli/styles"
	"github.com/thenoetrevino/charla/internal/models"
)

const (
	timeLayout    = "2006-01-02 15:04"
	previewWidth  = 48
	markdownWidth = 72
	checkmark     = "✓"
)

func toPayload(c models.Comment) commentPayload {
	return commentPayload{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Author:    c.Author,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPayloads(comments []models.Comment) []commentPayload {
	out := make([]commentPayload, len(comments))
	for i, c := range comments {
		out[i] = toPayload(c)
	}
	return out
}

// preview flattens content to a single line no wider than width cells
func preview(content string, width int) string {
	flat := strings.Join(strings.Fields(content), " ")
	return truncate.StringWithTail(flat, uint(width), "…")
}

func renderTable(w io.Writer, comments []models.Comment) error {
	if len(comments) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No comments found"))
		return err
	}

	rows := make([][]string, len(comments))
	for i, c := range comments {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.TaskID),
			c.Author,
			c.CreatedAt.Local().Format(timeLayout),
			preview(c.Content, previewWidth),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.SubtitleStyle).
		Headers("ID", "TASK", "AUTHOR", "CREATED", "CONTENT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle
			}
			return styles.ValueStyle.Padding(0, 1)
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render(fmt.Sprintf("%d comment(s)", len(comments))))
	return err
}

func renderCard(w io.Writer, c models.Comment) error {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Comment #%d", c.ID)))
	b.WriteString("\n\n")
	b.WriteString(field("Task", strconv.Itoa(c.TaskID)))
	b.WriteString(field("Author", c.Author))
	b.WriteString(field("Created", c.CreatedAt.Local().Format(timeLayout)))
	b.WriteString("\n")
	b.WriteString(styles.RenderMarkdown(c.Content, markdownWidth))

	_, err := fmt.Fprintln(w, styles.RenderCard(b.String()))
	return err
}

func field(label, value string) string {
	return styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n"
}

func renderDone(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintln(w, styles.SuccessStyle.Render(checkmark+" "+fmt.Sprintf(format, args...)))
	return err
}
