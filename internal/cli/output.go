package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/charla/internal/store"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd and writes to its
// configured output streams.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// Success outputs successful operation result. human renders the
// human-readable form and is only called in the default mode.
func (f *OutputFormatter) Success(data any, human func(w io.Writer) error) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return f.encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human == nil {
		_, err := fmt.Fprintf(f.out(), "%+v\n", data)
		return err
	}
	return human(f.out())
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err to the user and returns an *ExitCodeError carrying the
// matching exit code. fallback is used when err has no usable message.
func (f *OutputFormatter) Fail(err error, fallback string) error {
	code := ErrorCode(err)
	message := store.Message(err, fallback)
	switch code {
	case CodeUsage:
		message = err.Error()
	case CodeInternal:
		message = fallback + ": " + err.Error()
	}

	if fmtErr := f.ErrorWithSuggestion(code, message, suggestionFor(code)); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitCodeError{Code: ExitCode(err), Err: err}
}

func (f *OutputFormatter) encode(v any) error {
	return sonic.ConfigStd.NewEncoder(f.out()).Encode(v)
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

func suggestionFor(code string) string {
	switch code {
	case CodeNetwork:
		return "check that the comment service is running and --base-url is correct"
	case CodeNotFound:
		return "run 'charla comment list' to see existing comments"
	default:
		return ""
	}
}
