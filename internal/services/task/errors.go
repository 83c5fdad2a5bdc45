package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyContent        = errors.New("task content cannot be empty")
	ErrInvalidTaskID       = errors.New("invalid task ID")
	ErrInvalidCollectionID = errors.New("invalid collection ID")

	// Business logic errors
	ErrTaskNotFound       = errors.New("task not found")
	ErrCollectionNotFound = errors.New("collection not found")
)
