package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/cli/styles"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/tui/components"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a collection",
		Long:  "List the tasks of a collection, open tasks first, soonest expiration first.",
		RunE:  runList,
	}

	cmd.Flags().String("collection", "", "Collection ID or name (required)")
	if err := cmd.MarkFlagRequired("collection"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	collectionRef, _ := cmd.Flags().GetString("collection")
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

	tasks, err := cliInstance.App.TaskService.GetTasksByCollection(ctx, collection.ID)
	if err != nil {
		return formatter.Fail(cli.ExitError, "TASK_FETCH_ERROR", err)
	}

	now := cliInstance.App.Now()

	if quietMode {
		for _, t := range tasks {
			formatter.Println(t.ID)
		}
		return nil
	}

	if jsonOutput {
		out := make([]taskJSON, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, toJSON(t, now))
		}
		return formatter.Success("tasks", out)
	}

	formatter.Println(palette.Lookup(collection.Color).Render(collection.Name))
	if len(tasks) == 0 {
		formatter.Println(styles.SubtitleStyle.Render("  Aucune tâche"))
		return nil
	}

	for _, t := range tasks {
		check := "[ ]"
		text := firstLine(t.Content)
		if t.Done {
			check = "[x]"
			text = styles.DoneStyle.Render(text)
		}

		var suffix string
		switch {
		case t.ExpiresAt == nil:
		case t.Expired(now) && !t.Done:
			suffix = styles.ExpiredStyle.Render(" expirée " + components.RelativeDay(*t.ExpiresAt, now))
		default:
			suffix = styles.SubtitleStyle.Render(" " + components.RelativeDay(*t.ExpiresAt, now))
		}

		formatter.Printf("  %s %s%s %s\n", check, text, suffix, styles.SubtitleStyle.Render(fmt.Sprintf("(%s)", t.ID)))
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}
