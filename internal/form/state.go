// Package form holds the field values, validation errors and submitting flag
// of one form instance.
package form

import (
	"errors"
	"fmt"
	"reflect"
)

// State is the mutable field-state container of a single form. It is owned by
// exactly one dialog and is never shared or persisted.
type State[V any] struct {
	schema     Schema[V]
	defaults   V
	values     V
	errs       Errors
	submitting bool
}

// NewState creates a state seeded with defaults
func NewState[V any](schema Schema[V], defaults V) *State[V] {
	return &State[V]{
		schema:   schema,
		defaults: defaults,
		values:   defaults,
		errs:     Errors{},
	}
}

// Values returns a copy of the current values
func (s *State[V]) Values() V {
	return s.values
}

// Ptr exposes the live values so widgets can bind to individual fields
func (s *State[V]) Ptr() *V {
	return &s.values
}

// Defaults returns the values the state resets to
func (s *State[V]) Defaults() V {
	return s.defaults
}

// SetField assigns raw to the named field and re-validates that field.
// A conversion failure is recorded as the field's error and returned.
func (s *State[V]) SetField(name string, raw any) error {
	f, ok := s.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if f.Set == nil {
		return fmt.Errorf("%w: %s is read-only", ErrFieldType, name)
	}

	if err := f.Set(&s.values, raw); err != nil {
		if !errors.Is(err, ErrFieldType) {
			s.errs[name] = err
		}
		return err
	}

	if f.Check != nil {
		if err := f.Check(s.values); err != nil {
			s.errs[name] = err
			return nil
		}
	}
	delete(s.errs, name)
	return nil
}

// Validate runs the whole schema, stores and returns the resulting errors
func (s *State[V]) Validate() Errors {
	s.errs = s.schema.Validate(s.values)
	return s.errs
}

// ValidateField runs the schema check of a single field and records the outcome
func (s *State[V]) ValidateField(name string) error {
	err := s.schema.ValidateField(name, s.values)
	if errors.Is(err, ErrUnknownField) {
		return err
	}
	if err != nil {
		s.errs[name] = err
	} else {
		delete(s.errs, name)
	}
	return err
}

// Errors returns the errors recorded by the last validation
func (s *State[V]) Errors() Errors {
	return s.errs
}

// Submitting reports whether a submission is in flight
func (s *State[V]) Submitting() bool {
	return s.submitting
}

// SetSubmitting marks the start or end of a submission
func (s *State[V]) SetSubmitting(submitting bool) {
	s.submitting = submitting
}

// Dirty reports whether the values differ from the defaults
func (s *State[V]) Dirty() bool {
	return !reflect.DeepEqual(s.values, s.defaults)
}

// Reset puts the values back to the defaults and clears errors and the submitting flag
func (s *State[V]) Reset() {
	s.values = s.defaults
	s.errs = Errors{}
	s.submitting = false
}

// Reseed replaces the defaults and resets to them
func (s *State[V]) Reseed(defaults V) {
	s.defaults = defaults
	s.Reset()
}
