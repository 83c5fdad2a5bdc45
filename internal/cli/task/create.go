package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/form"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/schema"
	taskservice "github.com/thenoetrevino/tasknest/internal/services/task"
	"github.com/thenoetrevino/tasknest/internal/tui/components"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a task to a collection",
		Long: `Add a task to a collection.

Examples:
  tasknest task create --collection=Courses --content="Acheter du pain"

  # With an expiration date (AAAA-MM-JJ or JJ/MM/AAAA)
  tasknest task create --collection=Courses --content="Payer le loyer" --expires=2026-11-01

  # Quiet mode for bash capture
  TASK_ID=$(tasknest task create --collection=Courses --content="Lait" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("collection", "", "Collection ID or name (required)")
	if err := cmd.MarkFlagRequired("collection"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("content", "", "Task content, markdown allowed (required)")
	if err := cmd.MarkFlagRequired("content"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("expires", "", "Expiration date")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	collectionRef, _ := cmd.Flags().GetString("collection")
	content, _ := cmd.Flags().GetString("content")
	expires, _ := cmd.Flags().GetString("expires")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	collection, err := cliInstance.ResolveCollection(ctx, collectionRef)
	if err != nil {
		return formatter.Fail(cli.ExitCodeFor(err), "COLLECTION_NOT_FOUND", err)
	}

	state := form.NewState(schema.TaskSchema, schema.TaskInput{CollectionID: collection.ID})
	if err := cli.SetField(formatter, state, schema.FieldContent, content); err != nil {
		return err
	}
	if err := cli.SetField(formatter, state, schema.FieldExpiresAt, expires); err != nil {
		return err
	}

	svc := cliInstance.App.TaskService
	flow := workflow.New(workflow.Options[schema.TaskInput, *models.Task]{
		Action: func(ctx context.Context, in schema.TaskInput) (*models.Task, error) {
			return svc.CreateTask(ctx, taskservice.CreateTaskRequest{
				Content:      in.Content,
				ExpiresAt:    in.ExpiresAt,
				CollectionID: in.CollectionID,
			})
		},
		Notifier:   cli.Notifier{Formatter: formatter},
		Success:    schema.TaskCreated,
		Failure:    schema.TaskCreateFailed,
		LogMessage: "Error while creating task",
		Normalize:  schema.TaskInput.Normalized,
	})

	created, err := flow.Run(ctx, state)
	switch {
	case errors.Is(err, workflow.ErrInvalid):
		return formatter.FieldErrors(state.Errors())
	case err != nil:
		return formatter.SubmissionFailed("TASK_CREATE_ERROR", err)
	}

	if quietMode {
		formatter.Println(created.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("task", toJSON(created, cliInstance.App.Now()))
	}

	formatter.Printf("  %s (ID: %s)\n", created.Content, created.ID)
	formatter.Printf("  Collection: %s\n", palette.Lookup(collection.Color).Render(collection.Name))
	formatter.Printf("  %s\n", components.ExpiryDescription(created.ExpiresAt))
	return nil
}
