package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tasknest/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

// Create inserts a new, not done task into a collection
func (r *TaskRepo) Create(ctx context.Context, content string, expiresAt *time.Time, collectionID string) (*models.Task, error) {
	task := &models.Task{
		ID:           uuid.NewString(),
		Content:      content,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
		CollectionID: collectionID,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, content, expires_at, done, created_at, collection_id)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		task.ID, task.Content, formatNullTime(expiresAt), formatTime(task.CreatedAt), collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task in collection %s: %w", collectionID, err)
	}

	slog.Debug("task created", "id", task.ID, "collection", collectionID)
	return task, nil
}

// GetByCollection retrieves the tasks of a collection. Open tasks come first,
// then by expiration (undated last) and creation time.
func (r *TaskRepo) GetByCollection(ctx context.Context, collectionID string) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, content, expires_at, done, created_at, collection_id
		FROM tasks
		WHERE collection_id = ?
		ORDER BY done, expires_at IS NULL, expires_at, created_at
	`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// GetByID retrieves a single task
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, content, expires_at, done, created_at, collection_id
		FROM tasks WHERE id = ?
	`, id)
	task, err := scanTask(row.Scan)
	if err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

// SetDone marks a task done or open
func (r *TaskRepo) SetDone(ctx context.Context, id string, done bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tasks SET done = ? WHERE id = ?`, done, id)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return requireAffected(result)
}

// Delete removes a task
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return requireAffected(result)
}

func scanTask(scan func(dest ...any) error) (*models.Task, error) {
	var (
		task      models.Task
		expiresAt sql.NullString
		createdAt string
	)
	if err := scan(&task.ID, &task.Content, &expiresAt, &task.Done, &createdAt, &task.CollectionID); err != nil {
		return nil, err
	}

	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for task %s: %w", task.ID, err)
	}
	task.CreatedAt = t

	task.ExpiresAt, err = parseNullTime(expiresAt)
	if err != nil {
		return nil, fmt.Errorf("invalid expires_at for task %s: %w", task.ID, err)
	}
	return &task, nil
}
