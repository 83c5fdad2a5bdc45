package collection

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/cli/styles"
)

// DeleteCmd returns the collection delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id-or-name>",
		Short: "Delete a collection and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	collection, err := cliInstance.ResolveCollection(ctx, args[0])
	if err != nil {
		return formatter.Fail(cli.ExitCodeFor(err), "COLLECTION_NOT_FOUND", err)
	}

	if err := cliInstance.App.CollectionService.DeleteCollection(ctx, collection.ID); err != nil {
		return formatter.Fail(cli.ExitCodeFor(err), "COLLECTION_DELETE_ERROR", err)
	}

	switch {
	case quietMode:
		return nil
	case jsonOutput:
		return formatter.Success("deleted", collection.ID)
	}

	formatter.Println(styles.SuccessStyle.Render("Succès") + " La collection " + collection.Name + " a été supprimée")
	return nil
}
