package member

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/forms"
	"github.com/crewdeck/crewdeck/internal/models"
)

// AddCmd returns the member add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member to a project",
		Long: `Add a team member to a project.

Examples:
  crewdeck member add --name="Ada" --role="Developer" --project=<project-id>

  # Quiet mode for bash capture
  MEMBER_ID=$(crewdeck member add --name="Ada" --project=<project-id> --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Member name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("project", "", "Project id (required)")
	_ = cmd.MarkFlagRequired("project")
	cmd.Flags().String("role", models.SuggestedRoles[0], roleHelp())

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
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

	form := forms.TeamMemberForm{Name: name, Role: role, ProjectID: projectID}
	if err := form.Validate(); err != nil {
		_ = formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(cli.ExitValidation)
	}

	// Friendlier failure than the store's permissive contract allows.
	if _, found := cliInstance.Store.ProjectByID(projectID); !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no project with id %s", projectID))
		os.Exit(cli.ExitNotFound)
	}

	id := cliInstance.Store.AddTeamMember(name, role, projectID)

	if quietMode || jsonOutput {
		return formatter.Success(memberResult{ID: id, Name: name, Role: role, ProjectID: projectID})
	}

	fmt.Printf("Added %s (%s) to the team (%s)\n", name, role, id)
	return nil
}
