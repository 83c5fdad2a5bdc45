package state

import "github.com/thenoetrevino/tasknest/internal/models"

// AppState manages the domain data loaded from the database: the
// collections and the tasks of each collection.
type AppState struct {
	collections []*models.CollectionSummary
	tasks       map[string][]*models.Task
}

// NewAppState creates a new AppState with the provided data.
func NewAppState(collections []*models.CollectionSummary, tasks map[string][]*models.Task) *AppState {
	s := &AppState{}
	s.Set(collections, tasks)
	return s
}

// Set replaces all data, e.g. after a reload.
func (s *AppState) Set(collections []*models.CollectionSummary, tasks map[string][]*models.Task) {
	if tasks == nil {
		tasks = make(map[string][]*models.Task)
	}
	s.collections = collections
	s.tasks = tasks
}

// Collections returns the collections in display order.
func (s *AppState) Collections() []*models.CollectionSummary {
	return s.collections
}

// Collection returns the collection at index i, or nil.
func (s *AppState) Collection(i int) *models.CollectionSummary {
	if i < 0 || i >= len(s.collections) {
		return nil
	}
	return s.collections[i]
}

// IndexOf returns the index of the collection with the given ID, or -1.
func (s *AppState) IndexOf(collectionID string) int {
	for i, c := range s.collections {
		if c.ID == collectionID {
			return i
		}
	}
	return -1
}

// Tasks returns the tasks of a collection.
func (s *AppState) Tasks(collectionID string) []*models.Task {
	return s.tasks[collectionID]
}
