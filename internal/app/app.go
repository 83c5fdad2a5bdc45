package app

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tasknest/internal/database"
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	taskservice "github.com/thenoetrevino/tasknest/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	db   *sql.DB
	repo database.DataStore

	// Service layer (business logic)
	CollectionService collectionservice.Service
	TaskService       taskservice.Service

	// Logger receives submission failure detail
	Logger *slog.Logger
	// Now is the clock used to judge task expiration
	Now func() time.Time
}

// New creates a new App with all services initialized over db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:                db,
		repo:              repo,
		CollectionService: collectionservice.NewService(repo),
		TaskService:       taskservice.NewService(repo, repo),
		Logger:            cfg.logger,
		Now:               cfg.now,
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
