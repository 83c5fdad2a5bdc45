package schema

import (
	"strings"

	"github.com/thenoetrevino/tasknest/internal/form"
	"github.com/thenoetrevino/tasknest/internal/models"
)

// Collection form field names
const (
	FieldName  = "name"
	FieldColor = "color"
)

// CollectionInput is the edit-collection payload. ID is seeded when the
// form opens and is not an editable field.
type CollectionInput struct {
	ID    string
	Name  string
	Color models.ColorTag
}

// Normalized returns the payload sent to the update action
func (in CollectionInput) Normalized() CollectionInput {
	in.Name = strings.TrimSpace(in.Name)
	return in
}

// CheckName validates a collection name on its own
func CheckName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

// CheckColor validates that color is a palette key
func CheckColor(color models.ColorTag) error {
	if !color.Valid() {
		return ErrInvalidColor
	}
	return nil
}

// CollectionSchema is the edit-collection form schema
var CollectionSchema = form.Schema[CollectionInput]{
	{
		Name: FieldName,
		Set: func(v *CollectionInput, raw any) error {
			s, ok := raw.(string)
			if !ok {
				return form.TypeError(FieldName, raw)
			}
			v.Name = s
			return nil
		},
		Check: func(v CollectionInput) error {
			return CheckName(v.Name)
		},
	},
	{
		Name: FieldColor,
		Set: func(v *CollectionInput, raw any) error {
			switch val := raw.(type) {
			case models.ColorTag:
				v.Color = val
			case string:
				v.Color = models.ColorTag(val)
			default:
				return form.TypeError(FieldColor, raw)
			}
			return nil
		},
		Check: func(v CollectionInput) error {
			return CheckColor(v.Color)
		},
	},
}
