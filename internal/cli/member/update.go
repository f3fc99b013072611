package member

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/forms"
)

// UpdateCmd returns the member update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <member-id>",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	cmd.Flags().String("name", "", "New member name")
	cmd.Flags().String("role", "", roleHelp())
	cmd.Flags().String("project", "", "Move the member to another project")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	memberID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	existing, found := cliInstance.Store.TeamMemberByID(memberID)
	if !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no team member with id %s", memberID))
		os.Exit(cli.ExitNotFound)
	}

	// Full-record replace: unchanged flags keep the stored values.
	updated := existing
	if cmd.Flags().Changed("name") {
		updated.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("role") {
		updated.Role, _ = cmd.Flags().GetString("role")
	}
	if cmd.Flags().Changed("project") {
		updated.ProjectID, _ = cmd.Flags().GetString("project")
	}

	form := forms.TeamMemberForm{Name: updated.Name, Role: updated.Role, ProjectID: updated.ProjectID}
	if err := form.Validate(); err != nil {
		_ = formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(cli.ExitValidation)
	}

	cliInstance.Store.UpdateTeamMember(updated)

	if quietMode || jsonOutput {
		return formatter.Success(memberResult{
			ID: updated.ID, Name: updated.Name, Role: updated.Role, ProjectID: updated.ProjectID,
		})
	}

	fmt.Printf("Updated team member %q\n", updated.Name)
	return nil
}
