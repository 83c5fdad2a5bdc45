// Package cmd defines the tasknest command tree
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/cli/collection"
	"github.com/thenoetrevino/tasknest/internal/cli/seed"
	"github.com/thenoetrevino/tasknest/internal/cli/task"
	"github.com/thenoetrevino/tasknest/internal/launcher"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasknest",
		Short: "tasknest - collections of tasks in the terminal",
		Long: `tasknest keeps tasks in colored collections.

Run without arguments to open the interactive board.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			configPath, _ := cmd.Flags().GetString("config")
			return launcher.Launch(launcher.Options{ConfigPath: configPath, DBPath: dbPath})
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Database path (default ~/.tasknest/tasks.db)")
	rootCmd.PersistentFlags().String("config", "", "Config file path")

	rootCmd.AddCommand(collection.CollectionCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(seed.SeedCmd())

	return rootCmd
}

// Execute runs the command tree. Errors already reported by a subcommand
// carry their exit code; others still need printing.
func Execute() error {
	return NewRootCmd().Execute()
}

// Reported reports whether err was already printed by the failing command
func Reported(err error) bool {
	var coded *cli.CodedError
	return errors.As(err, &coded)
}
