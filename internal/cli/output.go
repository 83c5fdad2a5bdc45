package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Human reports whether neither JSON nor quiet output was requested
func (f *OutputFormatter) Human() bool {
	return !f.JSON && !f.Quiet
}

// Success outputs a successful result under key in JSON mode
func (f *OutputFormatter) Success(key string, data any) error {
	return json.NewEncoder(f.stdout()).Encode(map[string]any{
		"success": true,
		key:       data,
	})
}

// Printf writes human-readable output
func (f *OutputFormatter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(f.stdout(), format, args...)
}

// Println writes one line of human-readable output
func (f *OutputFormatter) Println(s string) {
	_, _ = fmt.Fprintln(f.stdout(), s)
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
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	_, _ = fmt.Fprintf(f.stderr(), "Erreur: %s\n", message)
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.stderr(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail prints the error and returns it wrapped with the exit code
func (f *OutputFormatter) Fail(exitCode int, code string, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		return Exit(exitCode, fmtErr)
	}
	return Exit(exitCode, err)
}
