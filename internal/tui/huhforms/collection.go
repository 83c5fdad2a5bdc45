package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/schema"
)

// Collection form field keys
const (
	CollectionNameKey  = "name"
	CollectionColorKey = "color"
)

// ColorOptions returns one option per palette key, each label painted
// with its own gradient
func ColorOptions() []huh.Option[models.ColorTag] {
	tags := models.AllColorTags()
	options := make([]huh.Option[models.ColorTag], 0, len(tags))
	for _, tag := range tags {
		options = append(options, huh.NewOption(palette.Lookup(tag).Render(tag.String()), tag))
	}
	return options
}

// CreateCollectionForm creates the edit-collection form bound to name and color
func CreateCollectionForm(
	name *string,
	color *models.ColorTag,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key(CollectionNameKey).
			Title("Nom").
			Placeholder("Personnel").
			Description("Nom de la collection").
			Validate(schema.CheckName).
			Value(name),

		huh.NewSelect[models.ColorTag]().
			Key(CollectionColorKey).
			Title("Couleur").
			Description("Selectionner une couleur pour votre collection").
			Options(ColorOptions()...).
			Height(len(models.AllColorTags()) + 2).
			Value(color),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}
