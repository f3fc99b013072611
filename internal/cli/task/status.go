package task

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/models"
)

// StatusCmd returns the task status subcommand, a shorthand for updating
// just the status field. Any status may move to any other.
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task-id> <status>",
		Short: "Set a task's status",
		Long: `Set a task's status.

Examples:
  crewdeck task status <task-id> in-progress
  crewdeck task status <task-id> completed
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	taskID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	status, err := models.ParseStatus(args[1])
	if err != nil {
		_ = formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(cli.ExitValidation)
	}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	s := cliInstance.Store
	task, found := s.TaskByID(taskID)
	if !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no task with id %s", taskID))
		os.Exit(cli.ExitNotFound)
	}

	task.Status = status
	s.UpdateTask(task)

	if quietMode || jsonOutput {
		return formatter.Success(toResult(task))
	}

	fmt.Printf("Task %q is now %s\n", task.Title, status)
	return nil
}
