package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller CollectionRepository or TaskRepository
// interfaces instead.
type DataStore interface {
	CollectionRepository
	TaskRepository
}

var _ DataStore = (*Repository)(nil)
