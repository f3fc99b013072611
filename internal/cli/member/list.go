package member

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/cli/styles"
	"github.com/crewdeck/crewdeck/internal/models"
)

// ListCmd returns the member list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Long: `List team members, optionally limited to one project.

Examples:
  crewdeck member list
  crewdeck member list --project=<project-id>
`,
		RunE: runList,
	}

	cmd.Flags().String("project", "", "Limit to one project")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	projectID, _ := cmd.Flags().GetString("project")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	var members []models.TeamMember
	if projectID != "" {
		members = cliInstance.Store.ProjectTeamMembers(projectID)
	} else {
		members = cliInstance.Store.TeamMembers()
	}

	if quietMode {
		for _, m := range members {
			fmt.Println(m.ID)
		}
		return nil
	}

	if jsonOutput {
		results := make([]memberResult, 0, len(members))
		for _, m := range members {
			results = append(results, memberResult{
				ID: m.ID, Name: m.Name, Role: m.Role, ProjectID: m.ProjectID,
			})
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"teamMembers": results,
		})
	}

	if len(members) == 0 {
		fmt.Println("No team members found")
		return nil
	}

	fmt.Printf("Found %d team members:\n\n", len(members))
	for _, m := range members {
		fmt.Printf("  %s  %s\n", styles.TitleStyle.Render(m.Name), styles.SubtleStyle.Render(m.Role))
		fmt.Printf("    %s\n", styles.SubtleStyle.Render(m.ID))
	}

	return nil
}
