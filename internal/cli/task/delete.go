package task

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	taskID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	s.DeleteTask(taskID)

	if jsonOutput {
		return formatter.Success(map[string]string{"id": taskID})
	}

	fmt.Printf("Deleted task %q\n", task.Title)
	return nil
}
