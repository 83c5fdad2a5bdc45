package models

import "time"

// Task is a content item belonging to exactly one collection
type Task struct {
	ID           string
	Content      string
	ExpiresAt    *time.Time // nil means the task never expires
	Done         bool
	CreatedAt    time.Time
	CollectionID string
}

// Expired reports whether the task's expiration day is before now's day.
// Tasks without an expiration never expire.
func (t *Task) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return StartOfDay(*t.ExpiresAt).Before(StartOfDay(now))
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
