package models

import (
	"encoding/json"
	"testing"
	"time"
)

// ============================================================================
// Comment Tests
// ============================================================================

func TestComment_DecodesServerTimestamps(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "whole seconds",
			raw:  `{"id":3,"task_id":1,"author":"Asha","content":"hi","created_at":"2024-01-01T00:00:00Z"}`,
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "microseconds",
			raw:  `{"id":3,"task_id":1,"author":"Asha","content":"hi","created_at":"2024-01-01T00:00:00.123456Z"}`,
			want: time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Comment
			if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if c.ID != 3 || c.TaskID != 1 || c.Author != "Asha" || c.Content != "hi" {
				t.Errorf("decoded comment = %+v", c)
			}
			if !c.CreatedAt.Equal(tt.want) {
				t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, tt.want)
			}
		})
	}
}

func TestCloneComments_Independent(t *testing.T) {
	original := []Comment{{ID: 1, Author: "a"}, {ID: 2, Author: "b"}}
	clone := CloneComments(original)

	clone[0].Author = "changed"
	if original[0].Author != "a" {
		t.Errorf("original mutated through clone: %q", original[0].Author)
	}

	if CloneComments(nil) != nil {
		t.Error("CloneComments(nil) should return nil")
	}
}

func TestIndexOfComment(t *testing.T) {
	comments := []Comment{{ID: 5}, {ID: 9}, {ID: 2}}

	if got := IndexOfComment(comments, 9); got != 1 {
		t.Errorf("IndexOfComment(9) = %d, want 1", got)
	}
	if got := IndexOfComment(comments, 42); got != -1 {
		t.Errorf("IndexOfComment(42) = %d, want -1", got)
	}
	if got := IndexOfComment(nil, 1); got != -1 {
		t.Errorf("IndexOfComment(nil) = %d, want -1", got)
	}
}
