package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/thenoetrevino/tasknest/internal/form"
)

// FieldErrors reports per-field validation failures with the same messages
// the TUI dialogs show inline
func (f *OutputFormatter) FieldErrors(errs form.Errors) error {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	if f.JSON {
		fields := make(map[string]string, len(errs))
		for _, name := range names {
			fields[name] = errs[name].Error()
		}
		if err := json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    "VALIDATION_ERROR",
				"message": "invalid input",
				"fields":  fields,
			},
		}); err != nil {
			return Exit(ExitError, err)
		}
		return Exit(ExitValidation, errs)
	}

	for _, name := range names {
		_, _ = fmt.Fprintf(f.stderr(), "Erreur: %s: %s\n", name, errs[name].Error())
	}
	return Exit(ExitValidation, errs)
}

// SetField applies a flag value to the form state. A value the field
// cannot convert, like a malformed date, is reported as a field error.
// An unknown field or a wrong value type is a programming error.
func SetField[V any](f *OutputFormatter, state *form.State[V], name string, value any) error {
	err := state.SetField(name, value)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, form.ErrFieldType):
		slog.Error("Error setting form field", "field", name, "error", err)
		return f.Fail(ExitError, "INTERNAL_ERROR", err)
	default:
		return f.FieldErrors(state.Errors())
	}
}

// SubmissionFailed reports a failed workflow submission. In human mode the
// workflow notifier has already printed the failure message.
func (f *OutputFormatter) SubmissionFailed(code string, err error) error {
	if !f.Human() {
		if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
			return Exit(ExitError, fmtErr)
		}
	}
	return Exit(ExitCodeFor(err), err)
}
