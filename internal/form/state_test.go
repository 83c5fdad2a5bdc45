package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name string
	Age  int
}

var errNameRequired = errors.New("name required")
var errTooYoung = errors.New("too young")

func profileSchema() Schema[profile] {
	return Schema[profile]{
		{
			Name: "name",
			Set: func(v *profile, raw any) error {
				s, ok := raw.(string)
				if !ok {
					return TypeError("name", raw)
				}
				v.Name = s
				return nil
			},
			Check: func(v profile) error {
				if strings.TrimSpace(v.Name) == "" {
					return errNameRequired
				}
				return nil
			},
		},
		{
			Name: "age",
			Set: func(v *profile, raw any) error {
				n, ok := raw.(int)
				if !ok {
					return TypeError("age", raw)
				}
				v.Age = n
				return nil
			},
			Check: func(v profile) error {
				if v.Age < 18 {
					return errTooYoung
				}
				return nil
			},
		},
	}
}

func TestStateSeededWithDefaults(t *testing.T) {
	s := NewState(profileSchema(), profile{Name: "Perso", Age: 30})

	assert.Equal(t, profile{Name: "Perso", Age: 30}, s.Values())
	assert.False(t, s.Dirty())
	assert.False(t, s.Submitting())
	assert.False(t, s.Errors().Any())
}

func TestSetFieldValidatesLive(t *testing.T) {
	s := NewState(profileSchema(), profile{Name: "Perso", Age: 30})

	require.NoError(t, s.SetField("name", ""))
	assert.ErrorIs(t, s.Errors().Field("name"), errNameRequired)

	require.NoError(t, s.SetField("name", "Travail"))
	assert.NoError(t, s.Errors().Field("name"))
	assert.True(t, s.Dirty())
}

func TestSetFieldRejectsUnknownAndWrongType(t *testing.T) {
	s := NewState(profileSchema(), profile{})

	assert.ErrorIs(t, s.SetField("email", "x"), ErrUnknownField)
	assert.ErrorIs(t, s.SetField("age", "thirty"), ErrFieldType)
	assert.Equal(t, 0, s.Values().Age)
	assert.NoError(t, s.Errors().Field("age"), "type errors are programming errors, not field errors")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	s := NewState(profileSchema(), profile{})

	errs := s.Validate()
	assert.Len(t, errs, 2)
	assert.ErrorIs(t, errs.Field("name"), errNameRequired)
	assert.ErrorIs(t, errs.Field("age"), errTooYoung)
	assert.Equal(t, "age: too young; name: name required", errs.Error())

	s.Ptr().Name = "Ok"
	s.Ptr().Age = 40
	assert.False(t, s.Validate().Any())
}

func TestValidateField(t *testing.T) {
	s := NewState(profileSchema(), profile{Age: 40})

	assert.ErrorIs(t, s.ValidateField("name"), errNameRequired)
	assert.NoError(t, s.ValidateField("age"))
	assert.ErrorIs(t, s.ValidateField("nope"), ErrUnknownField)
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewState(profileSchema(), profile{Name: "Perso", Age: 30})
	require.NoError(t, s.SetField("name", ""))
	s.SetSubmitting(true)

	s.Reset()

	assert.Equal(t, profile{Name: "Perso", Age: 30}, s.Values())
	assert.False(t, s.Errors().Any())
	assert.False(t, s.Submitting())
}

func TestReseed(t *testing.T) {
	s := NewState(profileSchema(), profile{Name: "Perso", Age: 30})
	s.Ptr().Name = "typed"

	s.Reseed(profile{Name: "Travail", Age: 50})

	assert.Equal(t, profile{Name: "Travail", Age: 50}, s.Values())
	assert.False(t, s.Dirty())
}
