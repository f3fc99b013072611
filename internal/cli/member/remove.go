package member

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
)

// RemoveCmd returns the member remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <member-id>",
		Short: "Remove a team member",
		Long: `Remove a team member from their project.

Tasks assigned to the member are kept and become unassigned.
`,
		Args: cobra.ExactArgs(1),
		RunE: runRemove,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	memberID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	s := cliInstance.Store
	m, found := s.TeamMemberByID(memberID)
	if !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no team member with id %s", memberID))
		os.Exit(cli.ExitNotFound)
	}

	// Count before the delete; these tasks become unassigned.
	unassigned := 0
	for _, t := range s.Tasks() {
		if t.AssignedToID == memberID {
			unassigned++
		}
	}

	s.DeleteTeamMember(memberID)

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":              memberID,
			"unassignedTasks": unassigned,
		})
	}

	fmt.Printf("Removed %s from the team (%d tasks unassigned)\n", m.Name, unassigned)
	return nil
}
