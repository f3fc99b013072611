package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/cli/styles"
	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/views"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, closest due date first",
		Long: `List tasks sorted by due date ascending, optionally limited to
one project and filtered by search text or status.

Examples:
  crewdeck task list --project=<project-id>
  crewdeck task list --search="login" --status=in-progress
`,
		RunE: runList,
	}

	cmd.Flags().String("project", "", "Limit to one project")
	cmd.Flags().String("search", "", "Filter by substring of title or description")
	cmd.Flags().String("status", "all", "Filter by status: all, not-started, in-progress, completed")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	projectID, _ := cmd.Flags().GetString("project")
	search, _ := cmd.Flags().GetString("search")
	statusStr, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var status models.TaskStatus
	if statusStr != "" && statusStr != "all" {
		parsed, err := models.ParseStatus(statusStr)
		if err != nil {
			_ = formatter.Error("VALIDATION_ERROR", err.Error())
			os.Exit(cli.ExitValidation)
		}
		status = parsed
	}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	s := cliInstance.Store
	var tasks []models.Task
	if projectID != "" {
		tasks = s.ProjectTasks(projectID)
	} else {
		tasks = s.Tasks()
	}
	tasks = views.Tasks(tasks, search, status)

	if quietMode {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if jsonOutput {
		results := make([]taskResult, 0, len(tasks))
		for _, t := range tasks {
			results = append(results, toResult(t))
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   results,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		line := fmt.Sprintf("  %s  %s", styles.TitleStyle.Render(t.Title), styles.StatusBadge(t.Status))
		if !t.DueDate.IsZero() {
			line += styles.SubtleStyle.Render("  due " + t.DueDate.String())
		}
		if t.Assigned() {
			if m, ok := s.TeamMemberByID(t.AssignedToID); ok {
				line += styles.SubtleStyle.Render("  @" + m.Name)
			}
		}
		fmt.Println(line)
		fmt.Printf("    %s\n", styles.SubtleStyle.Render(t.ID))
	}

	return nil
}
