package form

import "fmt"

// Field declares how one named value of V is assigned and checked
type Field[V any] struct {
	Name string

	// Set converts raw and stores it on v. It returns ErrFieldType-wrapped
	// errors for values of the wrong type, or a validation error when raw
	// cannot be converted (for example an unparsable date).
	Set func(v *V, raw any) error

	// Check validates the field's current value on v. Nil means always valid.
	Check func(v V) error
}

// Schema is the ordered list of fields of a form
type Schema[V any] []Field[V]

// Field returns the field declared under name
func (s Schema[V]) Field(name string) (Field[V], bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field[V]{}, false
}

// Validate checks every field and returns the failures. A valid value
// yields an empty (non-nil) map.
func (s Schema[V]) Validate(v V) Errors {
	errs := Errors{}
	for _, f := range s {
		if f.Check == nil {
			continue
		}
		if err := f.Check(v); err != nil {
			errs[f.Name] = err
		}
	}
	return errs
}

// ValidateField checks a single field
func (s Schema[V]) ValidateField(name string, v V) error {
	f, ok := s.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if f.Check == nil {
		return nil
	}
	return f.Check(v)
}

// TypeError builds the error a Set func returns for a value of the wrong type
func TypeError(field string, raw any) error {
	return fmt.Errorf("%w %s: %T", ErrFieldType, field, raw)
}
