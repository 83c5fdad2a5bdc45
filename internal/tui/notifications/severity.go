package notifications

import "github.com/thenoetrevino/tasknest/internal/workflow"

// Severity represents the severity level of a notification
type Severity int

const (
	Success Severity = iota
	Error
)

// severityOf maps a workflow notification kind to a toast severity
func severityOf(kind workflow.Kind) Severity {
	if kind == workflow.KindError {
		return Error
	}
	return Success
}
