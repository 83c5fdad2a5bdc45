package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/cli"
	"github.com/thenoetrevino/tasknest/internal/cli/styles"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE:  runDone,
	}

	cmd.Flags().Bool("undo", false, "Mark the task open again")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	undo, _ := cmd.Flags().GetBool("undo")
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

	if err := cliInstance.App.TaskService.SetTaskDone(ctx, args[0], !undo); err != nil {
		return formatter.Fail(cli.ExitCodeFor(err), "TASK_UPDATE_ERROR", err)
	}

	switch {
	case quietMode:
		return nil
	case jsonOutput:
		return formatter.Success("task", map[string]any{"id": args[0], "done": !undo})
	}

	message := " La tâche est terminée"
	if undo {
		message = " La tâche est de nouveau ouverte"
	}
	formatter.Println(styles.SuccessStyle.Render("Succès") + message)
	return nil
}
