// Package seed fills a database with demo collections and tasks
package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/models"
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	taskservice "github.com/thenoetrevino/tasknest/internal/services/task"
)

type demoTask struct {
	content string
	// days until expiration; nil means no expiration
	expiresIn *int
	done      bool
}

type demoCollection struct {
	name  string
	color models.ColorTag
	tasks []demoTask
}

func days(n int) *int { return &n }

var demo = []demoCollection{
	{
		name:  "Courses",
		color: models.ColorPoppy,
		tasks: []demoTask{
			{content: "Acheter du pain", expiresIn: days(0)},
			{content: "Lait, **œufs** et farine", expiresIn: days(2)},
			{content: "Café", done: true},
		},
	},
	{
		name:  "Maison",
		color: models.ColorFirtree,
		tasks: []demoTask{
			{content: "Arroser les plantes", expiresIn: days(-1)},
			{content: "Réparer la porte du garage\n\n- charnières\n- poignée"},
		},
	},
	{
		name:  "Travail",
		color: models.ColorSnowflake,
		tasks: []demoTask{
			{content: "Préparer la réunion de lundi", expiresIn: days(3)},
			{content: "Relire le rapport trimestriel", expiresIn: days(10)},
		},
	},
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add demo collections and tasks",
		Long:  "Add demo collections and tasks. Collections that already exist are skipped.",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}

	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	created, err := Seed(cmd.Context(), cliInstance.App)
	if err != nil {
		return formatter.Fail(cli.ExitError, "SEED_ERROR", err)
	}

	if !quietMode {
		formatter.Printf("%d collections créées\n", created)
	}
	return nil
}

// Seed adds the demo data and returns the number of collections created
func Seed(ctx context.Context, a *app.App) (int, error) {
	today := models.StartOfDay(a.Now())
	created := 0

	for _, dc := range demo {
		c, err := a.CollectionService.CreateCollection(ctx, collectionservice.CreateCollectionRequest{
			Name:  dc.name,
			Color: dc.color,
		})
		if errors.Is(err, collectionservice.ErrDuplicateName) {
			slog.Info("demo collection exists, skipping", "name", dc.name)
			continue
		}
		if err != nil {
			return created, err
		}
		created++

		for _, dt := range dc.tasks {
			var expires *time.Time
			if dt.expiresIn != nil {
				e := today.AddDate(0, 0, *dt.expiresIn)
				expires = &e
			}
			t, err := a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
				Content:      dt.content,
				ExpiresAt:    expires,
				CollectionID: c.ID,
			})
			if err != nil {
				return created, err
			}
			if dt.done {
				if err := a.TaskService.SetTaskDone(ctx, t.ID, true); err != nil {
					return created, err
				}
			}
		}
	}

	return created, nil
}
