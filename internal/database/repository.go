package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/tasknest/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*CollectionRepo
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CollectionRepo: &CollectionRepo{db: db},
		TaskRepo:       &TaskRepo{db: db},
	}
}

func (r *Repository) CreateCollection(ctx context.Context, name string, color models.ColorTag) (*models.Collection, error) {
	return r.CollectionRepo.Create(ctx, name, color)
}

func (r *Repository) GetAllCollections(ctx context.Context) ([]*models.Collection, error) {
	return r.CollectionRepo.GetAll(ctx)
}

func (r *Repository) GetCollectionSummaries(ctx context.Context) ([]*models.CollectionSummary, error) {
	return r.CollectionRepo.GetSummaries(ctx)
}

func (r *Repository) GetCollectionByID(ctx context.Context, id string) (*models.Collection, error) {
	return r.CollectionRepo.GetByID(ctx, id)
}

func (r *Repository) GetCollectionByName(ctx context.Context, name string) (*models.Collection, error) {
	return r.CollectionRepo.GetByName(ctx, name)
}

func (r *Repository) UpdateCollection(ctx context.Context, id, name string, color models.ColorTag) error {
	return r.CollectionRepo.Update(ctx, id, name, color)
}

func (r *Repository) DeleteCollection(ctx context.Context, id string) error {
	return r.CollectionRepo.Delete(ctx, id)
}

func (r *Repository) CreateTask(ctx context.Context, content string, expiresAt *time.Time, collectionID string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, content, expiresAt, collectionID)
}

func (r *Repository) GetTasksByCollection(ctx context.Context, collectionID string) ([]*models.Task, error) {
	return r.TaskRepo.GetByCollection(ctx, collectionID)
}

func (r *Repository) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) SetTaskDone(ctx context.Context, id string, done bool) error {
	return r.TaskRepo.SetDone(ctx, id, done)
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	return r.TaskRepo.Delete(ctx, id)
}
