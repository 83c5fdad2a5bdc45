package form

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUnknownField is returned by SetField for names the schema does not declare
	ErrUnknownField = errors.New("unknown form field")

	// ErrFieldType is returned when a value cannot be assigned to a field
	ErrFieldType = errors.New("invalid value type for field")
)

// Errors maps a field name to its validation error
type Errors map[string]error

// Field returns the error recorded for name, or nil
func (e Errors) Field(name string) error {
	if e == nil {
		return nil
	}
	return e[name]
}

// Any reports whether at least one field failed validation
func (e Errors) Any() bool {
	return len(e) > 0
}

// Error implements error so a non-empty Errors can be wrapped and returned
func (e Errors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name].Error())
	}
	return strings.Join(parts, "; ")
}
