package models

import "time"

// Collection is a named, colored grouping that owns zero or more tasks
type Collection struct {
	ID        string
	Name      string
	Color     ColorTag
	CreatedAt time.Time
}

// CollectionSummary is a collection plus the task counters shown in the sidebar
type CollectionSummary struct {
	*Collection
	TaskCount int
	DoneCount int
}
