package collection

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/cli/styles"
	"github.com/thenoetrevino/tasknest/internal/palette"
)

// ListCmd returns the collection list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Long:  "List all collections with their done and total task counts.",
		RunE:  runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	summaries, err := cliInstance.App.CollectionService.GetCollectionSummaries(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "COLLECTION_FETCH_ERROR", err)
	}

	if quietMode {
		for _, s := range summaries {
			formatter.Println(s.ID)
		}
		return nil
	}

	if jsonOutput {
		out := make([]collectionJSON, 0, len(summaries))
		for _, s := range summaries {
			out = append(out, summaryToJSON(s))
		}
		return formatter.Success("collections", out)
	}

	if len(summaries) == 0 {
		formatter.Println("Aucune collection")
		return nil
	}

	formatter.Println(styles.TitleStyle.Render(fmt.Sprintf("%d collections", len(summaries))))
	for _, s := range summaries {
		formatter.Printf("  %s %s  %s\n",
			palette.Lookup(s.Color).Render(s.Name),
			styles.SubtitleStyle.Render(fmt.Sprintf("%d/%d", s.DoneCount, s.TaskCount)),
			styles.SubtitleStyle.Render(s.ID),
		)
	}
	return nil
}
