package task

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/forms"
	"github.com/crewdeck/crewdeck/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task",
		Long: `Update a task. Only the provided flags change; everything else
keeps its stored value. Pass --assignee="" to unassign.
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description")
	cmd.Flags().String("start", "", "New start date, YYYY-MM-DD")
	cmd.Flags().String("due", "", "New due date, YYYY-MM-DD")
	cmd.Flags().String("status", "", "New status: not-started, in-progress, completed")
	cmd.Flags().String("assignee", "", "Team member id, or empty to unassign")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	taskID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	fail := func(err error) {
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
	existing, found := s.TaskByID(taskID)
	if !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no task with id %s", taskID))
		os.Exit(cli.ExitNotFound)
	}

	// Full-record replace: unchanged flags keep the stored values.
	updated := existing
	if cmd.Flags().Changed("title") {
		updated.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		updated.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("start") {
		startStr, _ := cmd.Flags().GetString("start")
		start, err := models.ParseDate(startStr)
		if err != nil {
			fail(err)
		}
		updated.StartDate = start
	}
	if cmd.Flags().Changed("due") {
		dueStr, _ := cmd.Flags().GetString("due")
		due, err := models.ParseDate(dueStr)
		if err != nil {
			fail(err)
		}
		updated.DueDate = due
	}
	if cmd.Flags().Changed("status") {
		statusStr, _ := cmd.Flags().GetString("status")
		status, err := models.ParseStatus(statusStr)
		if err != nil {
			fail(err)
		}
		updated.Status = status
	}
	if cmd.Flags().Changed("assignee") {
		updated.AssignedToID, _ = cmd.Flags().GetString("assignee")
		if updated.AssignedToID != "" {
			if _, found := s.TeamMemberByID(updated.AssignedToID); !found {
				_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no team member with id %s", updated.AssignedToID))
				os.Exit(cli.ExitNotFound)
			}
		}
	}

	form := forms.TaskForm{
		Title:        updated.Title,
		Description:  updated.Description,
		StartDate:    updated.StartDate,
		DueDate:      updated.DueDate,
		Status:       updated.Status,
		ProjectID:    updated.ProjectID,
		AssignedToID: updated.AssignedToID,
	}
	if err := form.Validate(); err != nil {
		fail(err)
	}

	s.UpdateTask(updated)

	if quietMode || jsonOutput {
		return formatter.Success(toResult(updated))
	}

	fmt.Printf("Updated task %q\n", updated.Title)
	return nil
}
