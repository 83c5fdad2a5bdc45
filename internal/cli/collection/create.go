package collection

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
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// CreateCmd returns the collection create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new collection",
		Long: `Create a new collection.

Examples:
  tasknest collection create --name="Courses" --color=poppy

  # JSON output
  tasknest collection create --name="Courses" --color=candy --json

  # Quiet mode for bash capture
  ID=$(tasknest collection create --name="Courses" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Collection name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("color", string(models.ColorSnowflake), "Color: sunset, poppy, rosebud, snowflake, candy, firtree, metal, powder")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
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

	state := form.NewState(schema.CollectionSchema, schema.CollectionInput{})
	if err := cli.SetField(formatter, state, schema.FieldName, name); err != nil {
		return err
	}
	if err := cli.SetField(formatter, state, schema.FieldColor, color); err != nil {
		return err
	}

	svc := cliInstance.App.CollectionService
	flow := workflow.New(workflow.Options[schema.CollectionInput, *models.Collection]{
		Action: func(ctx context.Context, in schema.CollectionInput) (*models.Collection, error) {
			return svc.CreateCollection(ctx, collectionservice.CreateCollectionRequest{Name: in.Name, Color: in.Color})
		},
		Notifier:   cli.Notifier{Formatter: formatter},
		Success:    schema.CollectionCreated,
		Failure:    schema.CollectionCreateFailed,
		LogMessage: "Error while creating collection",
		Normalize:  schema.CollectionInput.Normalized,
	})

	created, err := flow.Run(ctx, state)
	switch {
	case errors.Is(err, workflow.ErrInvalid):
		return formatter.FieldErrors(state.Errors())
	case err != nil:
		return formatter.SubmissionFailed("COLLECTION_CREATE_ERROR", err)
	}

	if quietMode {
		formatter.Println(created.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("collection", toJSON(created))
	}

	formatter.Printf("  %s (ID: %s)\n", palette.Lookup(created.Color).Render(created.Name), created.ID)
	return nil
}
