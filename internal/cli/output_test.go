package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/charla/internal/client"
	"github.com/thenoetrevino/charla/internal/store"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name string `json:"name"`
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := sonic.ConfigStd.UnmarshalFromString(s, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, s)
	}
	return result
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(mockDataWithID{ID: 7, Name: "x"}, nil); err != nil {
		t.Fatalf("Success() failed: %v", err)
	}

	result := decode(t, out.String())
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["id"] != float64(7) {
		t.Errorf("Expected data.id to be 7, got %v", data["id"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"with ID", mockDataWithID{ID: 42}, "42\n"},
		{"without ID prints nothing", mockDataWithoutID{Name: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			if err := f.Success(tt.data, nil); err != nil {
				t.Fatalf("Success() failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)

	err := f.Success(mockDataWithID{ID: 1}, func(w io.Writer) error {
		_, err := fmt.Fprint(w, "rendered")
		return err
	})
	if err != nil {
		t.Fatalf("Success() failed: %v", err)
	}
	if out.String() != "rendered" {
		t.Errorf("output = %q, want rendered", out.String())
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	if err := f.ErrorWithSuggestion(CodeNotFound, "Comment not found", "try list"); err != nil {
		t.Fatalf("ErrorWithSuggestion() failed: %v", err)
	}

	if errOut.Len() != 0 {
		t.Errorf("JSON mode should not write to stderr, got %q", errOut.String())
	}
	result := decode(t, out.String())
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != CodeNotFound || errData["message"] != "Comment not found" || errData["suggestion"] != "try list" {
		t.Errorf("unexpected error payload: %v", errData)
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	if err := f.Error(CodeServer, "boom"); err != nil {
		t.Fatalf("Error() failed: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("human errors go to stderr, stdout got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		fallback    string
		wantCode    string
		wantExit    int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         &store.ValidationError{Field: "author", Message: "Author is required"},
			fallback:    store.FallbackCreate,
			wantCode:    CodeValidation,
			wantExit:    ExitValidation,
			wantMessage: "Author is required",
		},
		{
			name:        "not found",
			err:         &client.ServerError{StatusCode: http.StatusNotFound, Message: "Comment not found"},
			fallback:    store.FallbackDelete,
			wantCode:    CodeNotFound,
			wantExit:    ExitNotFound,
			wantMessage: "Comment not found",
		},
		{
			name:        "network",
			err:         &client.NetworkError{Op: "list", Err: syscall.ECONNREFUSED},
			fallback:    store.FallbackLoad,
			wantCode:    CodeNetwork,
			wantExit:    ExitError,
			wantMessage: "Failed to load comments: connection refused",
		},
		{
			name:        "usage",
			err:         UsageError("nothing to update"),
			fallback:    store.FallbackUpdate,
			wantCode:    CodeUsage,
			wantExit:    ExitUsage,
			wantMessage: "nothing to update",
		},
		{
			name:        "internal",
			err:         errors.New("boom"),
			fallback:    store.FallbackCreate,
			wantCode:    CodeInternal,
			wantExit:    ExitError,
			wantMessage: "Failed to create: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(true, false)

			err := f.Fail(tt.err, tt.fallback)

			if got := ExitCode(err); got != tt.wantExit {
				t.Errorf("ExitCode = %d, want %d", got, tt.wantExit)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Fail() should wrap the original error")
			}

			errData := decode(t, out.String())["error"].(map[string]any)
			if errData["code"] != tt.wantCode {
				t.Errorf("code = %v, want %s", errData["code"], tt.wantCode)
			}
			if errData["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %s", errData["message"], tt.wantMessage)
			}
		})
	}
}
