package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/cli/styles"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its team and tasks",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	projectID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	s := cliInstance.Store
	p, found := s.ProjectByID(projectID)
	if !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no project with id %s", projectID))
		os.Exit(cli.ExitNotFound)
	}

	progress := s.ProjectProgress(projectID)
	members := s.ProjectTeamMembers(projectID)
	tasks := s.ProjectTasks(projectID)

	if jsonOutput {
		memberResults := make([]map[string]string, 0, len(members))
		for _, m := range members {
			memberResults = append(memberResults, map[string]string{
				"id": m.ID, "name": m.Name, "role": m.Role,
			})
		}
		taskResults := make([]map[string]string, 0, len(tasks))
		for _, t := range tasks {
			taskResults = append(taskResults, map[string]string{
				"id": t.ID, "title": t.Title, "status": string(t.Status),
				"dueDate": t.DueDate.String(),
			})
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"project": projectResult{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				CreatedAt:   p.CreatedAt.Format(time.RFC3339),
				Progress:    progress,
			},
			"teamMembers": memberResults,
			"tasks":       taskResults,
		})
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(p.Name))
	b.WriteString("  " + styles.ProgressLabel(progress) + "\n")
	if p.Description != "" {
		b.WriteString(styles.SubtleStyle.Render(p.Description) + "\n")
	}
	b.WriteString(styles.SubtleStyle.Render("created "+p.CreatedAt.Format("2006-01-02")) + "\n")

	b.WriteString(styles.SectionStyle.Render("Team") + "\n")
	if len(members) == 0 {
		b.WriteString(styles.SubtleStyle.Render("  no team members") + "\n")
	}
	for _, m := range members {
		b.WriteString(fmt.Sprintf("  %s  %s\n", m.Name, styles.SubtleStyle.Render(m.Role)))
	}

	b.WriteString(styles.SectionStyle.Render("Tasks") + "\n")
	if len(tasks) == 0 {
		b.WriteString(styles.SubtleStyle.Render("  no tasks") + "\n")
	}
	for _, t := range tasks {
		line := fmt.Sprintf("  %s  %s", t.Title, styles.StatusBadge(t.Status))
		if !t.DueDate.IsZero() {
			line += styles.SubtleStyle.Render("  due " + t.DueDate.String())
		}
		if t.Assigned() {
			if assignee, ok := s.TeamMemberByID(t.AssignedToID); ok {
				line += styles.SubtleStyle.Render("  @" + assignee.Name)
			}
		}
		b.WriteString(line + "\n")
	}

	fmt.Println(styles.CardStyle.Render(strings.TrimRight(b.String(), "\n")))
	return nil
}
