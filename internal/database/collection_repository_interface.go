package database

import (
	"context"

	"github.com/thenoetrevino/tasknest/internal/models"
)

// CollectionReader defines read operations for collections.
type CollectionReader interface {
	GetAllCollections(ctx context.Context) ([]*models.Collection, error)
	GetCollectionSummaries(ctx context.Context) ([]*models.CollectionSummary, error)
	GetCollectionByID(ctx context.Context, id string) (*models.Collection, error)
	GetCollectionByName(ctx context.Context, name string) (*models.Collection, error)
}

// CollectionWriter defines write operations for collections.
type CollectionWriter interface {
	CreateCollection(ctx context.Context, name string, color models.ColorTag) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id, name string, color models.ColorTag) error
	DeleteCollection(ctx context.Context, id string) error
}

// CollectionRepository combines all collection-related operations.
type CollectionRepository interface {
	CollectionReader
	CollectionWriter
}
