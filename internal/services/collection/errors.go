package collection

import "errors"

// Domain errors for collection service
var (
	// Validation errors
	ErrEmptyName           = errors.New("collection name cannot be empty")
	ErrNameTooLong         = errors.New("collection name cannot exceed 50 characters")
	ErrInvalidColor        = errors.New("invalid collection color")
	ErrInvalidCollectionID = errors.New("invalid collection ID")

	// Business logic errors
	ErrCollectionNotFound = errors.New("collection not found")
	ErrDuplicateName      = errors.New("a collection with this name already exists")
)

// MaxNameLength bounds collection names, in runes
const MaxNameLength = 50
