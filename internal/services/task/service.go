package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tasknest/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTasksByCollection(ctx context.Context, collectionID string) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	SetTaskDone(ctx context.Context, id string, done bool) error
	DeleteTask(ctx context.Context, id string) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Content      string
	ExpiresAt    *time.Time // Optional: nil means no expiration
	CollectionID string
}

// repository defines the data access methods needed by the task service
type repository interface {
	CreateTask(ctx context.Context, content string, expiresAt *time.Time, collectionID string) (*models.Task, error)
	GetTasksByCollection(ctx context.Context, collectionID string) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	SetTaskDone(ctx context.Context, id string, done bool) error
	DeleteTask(ctx context.Context, id string) error
}

// collectionRepository lets the service check the owning collection exists
type collectionRepository interface {
	GetCollectionByID(ctx context.Context, id string) (*models.Collection, error)
}

type service struct {
	repo           repository
	collectionRepo collectionRepository
}

// NewService creates a new task service
func NewService(repo repository, collectionRepo collectionRepository) Service {
	return &service{
		repo:           repo,
		collectionRepo: collectionRepo,
	}
}

// GetTasksByCollection retrieves the tasks of a collection
func (s *service) GetTasksByCollection(ctx context.Context, collectionID string) ([]*models.Task, error) {
	if strings.TrimSpace(collectionID) == "" {
		return nil, ErrInvalidCollectionID
	}
	return s.repo.GetTasksByCollection(ctx, collectionID)
}

// GetTaskByID retrieves a specific task
func (s *service) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidTaskID
	}
	t, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrTaskNotFound)
	}
	return t, nil
}

// CreateTask creates a new task in an existing collection
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if strings.TrimSpace(req.CollectionID) == "" {
		return nil, ErrInvalidCollectionID
	}

	if _, err := s.collectionRepo.GetCollectionByID(ctx, req.CollectionID); err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", mapNotFound(err, ErrCollectionNotFound))
	}

	t, err := s.repo.CreateTask(ctx, content, req.ExpiresAt, req.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("task created", "id", t.ID, "collection", t.CollectionID)
	return t, nil
}

// SetTaskDone marks a task done or open
func (s *service) SetTaskDone(ctx context.Context, id string, done bool) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidTaskID
	}
	if err := s.repo.SetTaskDone(ctx, id, done); err != nil {
		return fmt.Errorf("failed to update task: %w", mapNotFound(err, ErrTaskNotFound))
	}
	return nil
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidTaskID
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", mapNotFound(err, ErrTaskNotFound))
	}
	return nil
}

func mapNotFound(err, target error) error {
	if errors.Is(err, models.ErrNotFound) {
		return target
	}
	return err
}
