package cli

import (
	"fmt"

	"github.com/thenoetrevino/tasknest/internal/cli/styles"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// Notifier prints workflow notifications as single lines. Notifications are
// suppressed in JSON and quiet modes, where the result itself is the output.
type Notifier struct {
	Formatter *OutputFormatter
}

var _ workflow.Notifier = Notifier{}

// Notify implements workflow.Notifier
func (n Notifier) Notify(kind workflow.Kind, title, description string) {
	if n.Formatter == nil || !n.Formatter.Human() {
		return
	}
	switch kind {
	case workflow.KindError:
		_, _ = fmt.Fprintln(n.Formatter.stderr(), styles.ErrorStyle.Render(title)+" "+description)
	default:
		n.Formatter.Println(styles.SuccessStyle.Render(title) + " " + description)
	}
}
