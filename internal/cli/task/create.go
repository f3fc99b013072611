package task

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/forms"
	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/store"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in a project.

Examples:
  crewdeck task create \
    --title="Fix login bug" \
    --project=<project-id> \
    --due=2026-09-15

  # With an assignee and an explicit start date
  crewdeck task create \
    --title="Write release notes" \
    --project=<project-id> \
    --start=2026-09-01 --due=2026-09-05 \
    --assignee=<member-id>

  # Quiet mode for bash capture
  TASK_ID=$(crewdeck task create --title="Fix login bug" --project=<id> --due=2026-09-15 --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().String("project", "", "Project id (required)")
	_ = cmd.MarkFlagRequired("project")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("due")

	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("status", string(models.StatusNotStarted), "Status: not-started, in-progress, completed")
	cmd.Flags().String("assignee", "", "Team member id to assign")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	startStr, _ := cmd.Flags().GetString("start")
	dueStr, _ := cmd.Flags().GetString("due")
	statusStr, _ := cmd.Flags().GetString("status")
	projectID, _ := cmd.Flags().GetString("project")
	assigneeID, _ := cmd.Flags().GetString("assignee")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	fail := func(err error) {
		_ = formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(cli.ExitValidation)
	}

	if startStr == "" {
		startStr = time.Now().Format(models.DateLayout)
	}
	startDate, err := models.ParseDate(startStr)
	if err != nil {
		fail(err)
	}
	dueDate, err := models.ParseDate(dueStr)
	if err != nil {
		fail(err)
	}
	status, err := models.ParseStatus(statusStr)
	if err != nil {
		fail(err)
	}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	form := forms.TaskForm{
		Title:        title,
		Description:  description,
		StartDate:    startDate,
		DueDate:      dueDate,
		Status:       status,
		ProjectID:    projectID,
		AssignedToID: assigneeID,
	}
	if err := form.Validate(); err != nil {
		fail(err)
	}

	s := cliInstance.Store
	if _, found := s.ProjectByID(projectID); !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no project with id %s", projectID))
		os.Exit(cli.ExitNotFound)
	}
	if assigneeID != "" {
		if _, found := s.TeamMemberByID(assigneeID); !found {
			_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no team member with id %s", assigneeID))
			os.Exit(cli.ExitNotFound)
		}
	}

	id := s.AddTask(store.AddTaskRequest{
		Title:        title,
		Description:  description,
		StartDate:    startDate,
		DueDate:      dueDate,
		Status:       status,
		ProjectID:    projectID,
		AssignedToID: assigneeID,
	})

	created, _ := s.TaskByID(id)
	if quietMode || jsonOutput {
		return formatter.Success(toResult(created))
	}

	fmt.Printf("Created task %q due %s (%s)\n", created.Title, created.DueDate, id)
	return nil
}
