// Package cli holds what every tasknest subcommand shares: the app
// container, output formatting, exit codes and the notifier used by
// form workflows outside the TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/database"
	"github.com/thenoetrevino/tasknest/internal/launcher"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was injected and belongs to the caller
	owned bool
}

// NewCLI opens the configured database and builds the app container
func NewCLI(ctx context.Context, opts launcher.Options) (*CLI, error) {
	cfg, err := launcher.LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: app.New(db), owned: true}, nil
}

// GetCLIFromContext returns the app injected in the command context, or
// opens one from the --db and --config flags.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := AppFromContext(ctx); ok {
		return &CLI{App: a}, nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	configPath, _ := cmd.Flags().GetString("config")
	return NewCLI(ctx, launcher.Options{ConfigPath: configPath, DBPath: dbPath})
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
