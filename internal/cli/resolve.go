package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/tasknest/internal/models"
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	taskservice "github.com/thenoetrevino/tasknest/internal/services/task"
)

// ResolveCollection finds a collection by ID, then by case-insensitive name
func (c *CLI) ResolveCollection(ctx context.Context, ref string) (*models.Collection, error) {
	collection, err := c.App.CollectionService.GetCollectionByID(ctx, ref)
	if err == nil {
		return collection, nil
	}
	if !errors.Is(err, collectionservice.ErrCollectionNotFound) && !errors.Is(err, collectionservice.ErrInvalidCollectionID) {
		return nil, err
	}
	return c.App.CollectionService.GetCollectionByName(ctx, ref)
}

// ExitCodeFor maps service errors to exit codes
func ExitCodeFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, collectionservice.ErrCollectionNotFound),
		errors.Is(err, taskservice.ErrCollectionNotFound),
		errors.Is(err, taskservice.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, collectionservice.ErrEmptyName),
		errors.Is(err, collectionservice.ErrNameTooLong),
		errors.Is(err, collectionservice.ErrInvalidColor),
		errors.Is(err, collectionservice.ErrDuplicateName),
		errors.Is(err, taskservice.ErrEmptyContent):
		return ExitValidation
	default:
		return ExitError
	}
}
