package components

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/charla/internal/models"
)

func sampleComment() models.Comment {
	return models.Comment{
		ID:        12,
		TaskID:    3,
		Author:    "asha",
		Content:   "first line\nsecond line",
		CreatedAt: time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC),
	}
}

func TestRenderCommentCard_Content(t *testing.T) {
	out := RenderCommentCard(sampleComment(), CardState{}, 50)

	for _, want := range []string{"asha", "#12", "task 3", "first line", "second line"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCommentCard_StatusTags(t *testing.T) {
	tests := []struct {
		name  string
		state CardState
		want  string
	}{
		{"deleting", CardState{Deleting: true}, "deleting…"},
		{"editing", CardState{Editing: true}, "editing"},
		{"new", CardState{Highlighted: true}, "new"},
		{"deleting wins", CardState{Deleting: true, Editing: true}, "deleting…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderCommentCard(sampleComment(), tt.state, 50)
			if !strings.Contains(out, tt.want) {
				t.Errorf("card missing tag %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestRenderCommentCard_WrapsLongContent(t *testing.T) {
	c := sampleComment()
	c.Content = strings.Repeat("lorem ipsum ", 40)

	out := RenderCommentCard(c, CardState{Selected: true}, 50)
	if w := lipgloss.Width(out); w > 50 {
		t.Errorf("card width = %d, want <= 50", w)
	}
}

func TestRenderCommentDetail(t *testing.T) {
	c := sampleComment()
	c.Content = "**bold** note"

	out := RenderCommentDetail(c, 60)
	for _, want := range []string{"Comment #12", "asha", "bold", "note"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if out := RenderMarkdown("  ", 40); !strings.Contains(out, "No content") {
		t.Errorf("RenderMarkdown(blank) = %q", out)
	}
}
