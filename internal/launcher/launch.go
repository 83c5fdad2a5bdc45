// Package launcher wires logging, configuration and the database, then runs the TUI
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/config"
	"github.com/thenoetrevino/tasknest/internal/database"
	"github.com/thenoetrevino/tasknest/internal/logging"
	"github.com/thenoetrevino/tasknest/internal/tui/core"
)

// Options overrides the configured locations. Empty fields keep the defaults.
type Options struct {
	ConfigPath string
	DBPath     string
	LogDir     string
}

// LoadConfig loads the config file named by opts, or the default one, and
// applies the database override.
func LoadConfig(opts Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFrom(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	return cfg, nil
}

// Launch starts the TUI application and blocks until it exits
func Launch(opts Options) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init(opts.LogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("starting tui", "db", cfg.Database.Path)

	p := tea.NewProgram(core.New(ctx, application, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
