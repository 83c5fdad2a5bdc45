package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/form"
	"github.com/thenoetrevino/tasknest/internal/models"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, got, "empty input means no expiration")

	got, err = ParseDate(" 2026-10-19 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local), *got)

	got, err = ParseDate("19/10/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local), *got)

	// Past dates are accepted, there is no range restriction
	_, err = ParseDate("1999-01-01")
	assert.NoError(t, err)

	_, err = ParseDate("2026-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseDate("demain")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatDateRoundTrip(t *testing.T) {
	assert.Empty(t, FormatDate(nil))

	d := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)
	parsed, err := ParseDate(FormatDate(&d))
	require.NoError(t, err)
	assert.Equal(t, d, *parsed)
}

func TestTaskSchema(t *testing.T) {
	tests := []struct {
		name    string
		input   TaskInput
		invalid []string
	}{
		{
			name:  "content only",
			input: TaskInput{Content: "Acheter du lait", CollectionID: "c1"},
		},
		{
			name:    "empty content",
			input:   TaskInput{CollectionID: "c1"},
			invalid: []string{FieldContent},
		},
		{
			name:    "whitespace content",
			input:   TaskInput{Content: "  \n ", CollectionID: "c1"},
			invalid: []string{FieldContent},
		},
		{
			name:    "zero date",
			input:   TaskInput{Content: "x", ExpiresAt: &time.Time{}, CollectionID: "c1"},
			invalid: []string{FieldExpiresAt},
		},
		{
			name:    "missing collection",
			input:   TaskInput{Content: "x"},
			invalid: []string{FieldCollectionID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := TaskSchema.Validate(tt.input)
			assert.Len(t, errs, len(tt.invalid))
			for _, field := range tt.invalid {
				assert.Error(t, errs.Field(field), "expected %s to be invalid", field)
			}
		})
	}
}

func TestTaskSchemaSetExpiresAt(t *testing.T) {
	s := form.NewState(TaskSchema, TaskInput{CollectionID: "c1"})

	require.NoError(t, s.SetField(FieldExpiresAt, "2026-12-24"))
	require.NotNil(t, s.Values().ExpiresAt)
	assert.Equal(t, time.December, s.Values().ExpiresAt.Month())

	require.NoError(t, s.SetField(FieldExpiresAt, ""))
	assert.Nil(t, s.Values().ExpiresAt)

	err := s.SetField(FieldExpiresAt, "not a date")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, s.Errors().Field(FieldExpiresAt), ErrInvalidDate)

	assert.ErrorIs(t, s.SetField(FieldExpiresAt, 42), form.ErrFieldType)
}

func TestTaskInputNormalized(t *testing.T) {
	in := TaskInput{Content: "  Acheter du lait \n", CollectionID: "c1"}
	assert.Equal(t, "Acheter du lait", in.Normalized().Content)
	assert.Equal(t, "  Acheter du lait \n", in.Content)
}

func TestCollectionSchema(t *testing.T) {
	assert.False(t, CollectionSchema.Validate(CollectionInput{Name: "Perso", Color: models.ColorPoppy}).Any())

	errs := CollectionSchema.Validate(CollectionInput{Name: " ", Color: models.ColorPoppy})
	assert.ErrorIs(t, errs.Field(FieldName), ErrNameRequired)

	errs = CollectionSchema.Validate(CollectionInput{Name: "Perso", Color: "mauve"})
	assert.ErrorIs(t, errs.Field(FieldColor), ErrInvalidColor)
}

func TestCollectionSchemaSetColor(t *testing.T) {
	s := form.NewState(CollectionSchema, CollectionInput{Name: "Perso", Color: models.ColorPoppy})

	require.NoError(t, s.SetField(FieldColor, "snowflake"))
	assert.Equal(t, models.ColorSnowflake, s.Values().Color)

	require.NoError(t, s.SetField(FieldColor, models.ColorMetal))
	assert.Equal(t, models.ColorMetal, s.Values().Color)

	assert.ErrorIs(t, s.SetField(FieldColor, 3), form.ErrFieldType)
}
