package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tasknest/internal/models"
)

// Service defines all collection-related business operations
type Service interface {
	// Read operations
	GetAllCollections(ctx context.Context) ([]*models.Collection, error)
	GetCollectionSummaries(ctx context.Context) ([]*models.CollectionSummary, error)
	GetCollectionByID(ctx context.Context, id string) (*models.Collection, error)
	GetCollectionByName(ctx context.Context, name string) (*models.Collection, error)

	// Write operations
	CreateCollection(ctx context.Context, req CreateCollectionRequest) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id string, req UpdateCollectionRequest) (*models.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
}

// CreateCollectionRequest encapsulates data for creating a collection
type CreateCollectionRequest struct {
	Name  string
	Color models.ColorTag
}

// UpdateCollectionRequest encapsulates data for updating a collection.
// Nil fields keep their current value.
type UpdateCollectionRequest struct {
	Name  *string
	Color *models.ColorTag
}

// repository defines the data access methods needed by the collection service
type repository interface {
	CreateCollection(ctx context.Context, name string, color models.ColorTag) (*models.Collection, error)
	GetAllCollections(ctx context.Context) ([]*models.Collection, error)
	GetCollectionSummaries(ctx context.Context) ([]*models.CollectionSummary, error)
	GetCollectionByID(ctx context.Context, id string) (*models.Collection, error)
	GetCollectionByName(ctx context.Context, name string) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id, name string, color models.ColorTag) error
	DeleteCollection(ctx context.Context, id string) error
}

type service struct {
	repo repository
}

// NewService creates a new collection service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllCollections retrieves all collections ordered by name
func (s *service) GetAllCollections(ctx context.Context) ([]*models.Collection, error) {
	return s.repo.GetAllCollections(ctx)
}

// GetCollectionSummaries retrieves all collections with their task counters
func (s *service) GetCollectionSummaries(ctx context.Context) ([]*models.CollectionSummary, error) {
	return s.repo.GetCollectionSummaries(ctx)
}

// GetCollectionByID retrieves a specific collection
func (s *service) GetCollectionByID(ctx context.Context, id string) (*models.Collection, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidCollectionID
	}
	c, err := s.repo.GetCollectionByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

// GetCollectionByName retrieves a collection by case-insensitive name
func (s *service) GetCollectionByName(ctx context.Context, name string) (*models.Collection, error) {
	c, err := s.repo.GetCollectionByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

// CreateCollection creates a new collection with validation
func (s *service) CreateCollection(ctx context.Context, req CreateCollectionRequest) (*models.Collection, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !req.Color.Valid() {
		return nil, ErrInvalidColor
	}
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	c, err := s.repo.CreateCollection(ctx, name, req.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	slog.Info("collection created", "id", c.ID, "name", c.Name, "color", c.Color)
	return c, nil
}

// UpdateCollection changes a collection's name and/or color and returns the result
func (s *service) UpdateCollection(ctx context.Context, id string, req UpdateCollectionRequest) (*models.Collection, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidCollectionID
	}

	existing, err := s.repo.GetCollectionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", mapNotFound(err))
	}

	updated := *existing
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		if err := s.ensureNameFree(ctx, name, id); err != nil {
			return nil, err
		}
		updated.Name = name
	}
	if req.Color != nil {
		if !req.Color.Valid() {
			return nil, ErrInvalidColor
		}
		updated.Color = *req.Color
	}

	if err := s.repo.UpdateCollection(ctx, id, updated.Name, updated.Color); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", mapNotFound(err))
	}

	slog.Info("collection updated", "id", id, "name", updated.Name, "color", updated.Color)
	return &updated, nil
}

// DeleteCollection removes a collection together with its tasks
func (s *service) DeleteCollection(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidCollectionID
	}
	if err := s.repo.DeleteCollection(ctx, id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", mapNotFound(err))
	}
	return nil
}

// ensureNameFree rejects a name already used by another collection
func (s *service) ensureNameFree(ctx context.Context, name, selfID string) error {
	other, err := s.repo.GetCollectionByName(ctx, name)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check collection name: %w", err)
	case other.ID != selfID:
		return ErrDuplicateName
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return ErrCollectionNotFound
	}
	return err
}
