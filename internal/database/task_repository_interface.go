package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/tasknest/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTasksByCollection(ctx context.Context, collectionID string) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, content string, expiresAt *time.Time, collectionID string) (*models.Task, error)
	SetTaskDone(ctx context.Context, id string, done bool) error
	DeleteTask(ctx context.Context, id string) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
