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

// CollectionRepo handles all collection-related database operations.
type CollectionRepo struct {
	db *sql.DB
}

// Create inserts a new collection with a generated identifier
func (r *CollectionRepo) Create(ctx context.Context, name string, color models.ColorTag) (*models.Collection, error) {
	c := &models.Collection{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO collections (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, string(c.Color), formatTime(c.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert collection '%s': %w", name, err)
	}

	slog.Debug("collection created", "id", c.ID, "name", name)
	return c, nil
}

// GetAll retrieves every collection ordered by name
func (r *CollectionRepo) GetAll(ctx context.Context) ([]*models.Collection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, created_at FROM collections ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*models.Collection
	for rows.Next() {
		c, err := scanCollection(rows.Scan)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, rows.Err()
}

// GetSummaries retrieves every collection with its task counters
func (r *CollectionRepo) GetSummaries(ctx context.Context) ([]*models.CollectionSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.color, c.created_at,
		       COUNT(t.id), COALESCE(SUM(t.done), 0)
		FROM collections c
		LEFT JOIN tasks t ON t.collection_id = c.id
		GROUP BY c.id
		ORDER BY c.name COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.CollectionSummary
	for rows.Next() {
		s := &models.CollectionSummary{}
		c, err := scanCollection(func(dest ...any) error {
			return rows.Scan(append(dest, &s.TaskCount, &s.DoneCount)...)
		})
		if err != nil {
			return nil, err
		}
		s.Collection = c
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// GetByID retrieves a single collection
func (r *CollectionRepo) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at FROM collections WHERE id = ?`, id)
	c, err := scanCollection(row.Scan)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// GetByName retrieves a collection by its case-insensitive name
func (r *CollectionRepo) GetByName(ctx context.Context, name string) (*models.Collection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at FROM collections WHERE name = ? COLLATE NOCASE`, name)
	c, err := scanCollection(row.Scan)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Update replaces a collection's name and color
func (r *CollectionRepo) Update(ctx context.Context, id, name string, color models.ColorTag) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE collections SET name = ?, color = ? WHERE id = ?`,
		name, string(color), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update collection %s: %w", id, err)
	}
	return requireAffected(result)
}

// Delete removes a collection and, through the cascade, its tasks
func (r *CollectionRepo) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Explicit delete keeps the cascade even on connections without foreign_keys
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE collection_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete tasks of collection %s: %w", id, err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete collection %s: %w", id, err)
		}
		return requireAffected(result)
	})
}

func scanCollection(scan func(dest ...any) error) (*models.Collection, error) {
	var (
		c         models.Collection
		color     string
		createdAt string
	)
	if err := scan(&c.ID, &c.Name, &color, &createdAt); err != nil {
		return nil, err
	}
	c.Color = models.ColorTag(color)

	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for collection %s: %w", c.ID, err)
	}
	c.CreatedAt = t
	return &c, nil
}
