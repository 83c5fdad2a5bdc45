package models

import "errors"

// ErrNotFound is returned by the persistence layer when no row matches the identifier
var ErrNotFound = errors.New("not found")
