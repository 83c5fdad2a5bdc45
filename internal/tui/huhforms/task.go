package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tasknest/internal/schema"
)

// Task form field keys
const (
	TaskContentKey = "content"
	TaskExpiresKey = "expiresAt"
)

// CreateTaskForm creates the create-task form. content is bound to the form
// state, expires holds the raw typed date, and describeExpiry renders the
// live description under the date field.
func CreateTaskForm(
	content *string,
	expires *string,
	describeExpiry func() string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewText().
			Key(TaskContentKey).
			Title("Contenu").
			Placeholder("Contenu de la tâche").
			CharLimit(5000).
			Lines(5).
			Validate(schema.CheckContent).
			Value(content),

		huh.NewInput().
			Key(TaskExpiresKey).
			Title("Expire le").
			Placeholder("AAAA-MM-JJ").
			DescriptionFunc(describeExpiry, expires).
			Validate(schema.CheckDate).
			Value(expires),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}
