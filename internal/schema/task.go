// Package schema declares the field constraints of the task and collection forms.
package schema

import (
	"strings"
	"time"

	"github.com/thenoetrevino/tasknest/internal/form"
)

// Task form field names
const (
	FieldContent      = "content"
	FieldExpiresAt    = "expiresAt"
	FieldCollectionID = "collectionId"
)

// TaskInput is the create-task payload
type TaskInput struct {
	Content      string
	ExpiresAt    *time.Time
	CollectionID string
}

// Normalized returns the payload sent to the create action
func (in TaskInput) Normalized() TaskInput {
	in.Content = strings.TrimSpace(in.Content)
	return in
}

// CheckContent validates the task content on its own, for inline feedback
func CheckContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	return nil
}

// CheckDate validates a typed expiration date; empty is valid
func CheckDate(s string) error {
	_, err := ParseDate(s)
	return err
}

// TaskSchema is the create-task form schema
var TaskSchema = form.Schema[TaskInput]{
	{
		Name: FieldContent,
		Set: func(v *TaskInput, raw any) error {
			s, ok := raw.(string)
			if !ok {
				return form.TypeError(FieldContent, raw)
			}
			v.Content = s
			return nil
		},
		Check: func(v TaskInput) error {
			return CheckContent(v.Content)
		},
	},
	{
		Name: FieldExpiresAt,
		Set: func(v *TaskInput, raw any) error {
			switch val := raw.(type) {
			case nil:
				v.ExpiresAt = nil
			case *time.Time:
				v.ExpiresAt = val
			case time.Time:
				v.ExpiresAt = &val
			case string:
				t, err := ParseDate(val)
				if err != nil {
					return err
				}
				v.ExpiresAt = t
			default:
				return form.TypeError(FieldExpiresAt, raw)
			}
			return nil
		},
		Check: func(v TaskInput) error {
			if v.ExpiresAt != nil && v.ExpiresAt.IsZero() {
				return ErrInvalidDate
			}
			return nil
		},
	},
	{
		Name: FieldCollectionID,
		Set: func(v *TaskInput, raw any) error {
			s, ok := raw.(string)
			if !ok {
				return form.TypeError(FieldCollectionID, raw)
			}
			v.CollectionID = s
			return nil
		},
		Check: func(v TaskInput) error {
			if strings.TrimSpace(v.CollectionID) == "" {
				return ErrCollectionRequired
			}
			return nil
		},
	},
}
