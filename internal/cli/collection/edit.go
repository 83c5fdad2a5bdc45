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

// EditCmd returns the collection edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id-or-name>",
		Short: "Rename or recolor a collection",
		Long: `Rename or recolor a collection. Omitted flags keep the current value.

Examples:
  tasknest collection edit Courses --name="Marché"
  tasknest collection edit Courses --color=firtree --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New color")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("color") {
		return formatter.Fail(cli.ExitUsage, "NO_CHANGES", errors.New("at least one of --name or --color is required"))
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	collection, err := cliInstance.ResolveCollection(ctx, args[0])
	if err != nil {
		return formatter.Fail(cli.ExitCodeFor(err), "COLLECTION_NOT_FOUND", err)
	}

	// Seed with the current values, then apply the flags as the sheet would
	state := form.NewState(schema.CollectionSchema, schema.CollectionInput{
		ID:    collection.ID,
		Name:  collection.Name,
		Color: collection.Color,
	})
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		if err := cli.SetField(formatter, state, schema.FieldName, name); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		if err := cli.SetField(formatter, state, schema.FieldColor, color); err != nil {
			return err
		}
	}

	svc := cliInstance.App.CollectionService
	flow := workflow.New(workflow.Options[schema.CollectionInput, *models.Collection]{
		Action: func(ctx context.Context, in schema.CollectionInput) (*models.Collection, error) {
			return svc.UpdateCollection(ctx, in.ID, collectionservice.UpdateCollectionRequest{
				Name:  &in.Name,
				Color: &in.Color,
			})
		},
		Notifier:   cli.Notifier{Formatter: formatter},
		Success:    schema.CollectionUpdated,
		Failure:    schema.CollectionUpdateFailed,
		LogMessage: "Error while updating collection",
		Normalize:  schema.CollectionInput.Normalized,
	})

	updated, err := flow.Run(ctx, state)
	switch {
	case errors.Is(err, workflow.ErrInvalid):
		return formatter.FieldErrors(state.Errors())
	case err != nil:
		return formatter.SubmissionFailed("COLLECTION_UPDATE_ERROR", err)
	}

	if quietMode {
		formatter.Println(updated.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("collection", toJSON(updated))
	}

	formatter.Printf("  %s (ID: %s)\n", palette.Lookup(updated.Color).Render(updated.Name), updated.ID)
	return nil
}
