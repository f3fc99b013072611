package project

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project and everything in it",
		Long: `Delete a project. Its team members and tasks are removed with it.

This cascade is permanent; pass --force to skip the safety check.
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip the safety check")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	projectID := args[0]
	force, _ := cmd.Flags().GetBool("force")
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

	members := len(s.ProjectTeamMembers(projectID))
	tasks := len(s.ProjectTasks(projectID))

	if !force && (members > 0 || tasks > 0) {
		_ = formatter.ErrorWithSuggestion("CONFIRMATION_REQUIRED",
			fmt.Sprintf("project %q still has %d team members and %d tasks", p.Name, members, tasks),
			"re-run with --force to delete the project and everything in it")
		os.Exit(cli.ExitUsage)
	}

	s.DeleteProject(projectID)

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":             projectID,
			"deletedMembers": members,
			"deletedTasks":   tasks,
		})
	}

	fmt.Printf("Deleted project %q (%d members, %d tasks)\n", p.Name, members, tasks)
	return nil
}
