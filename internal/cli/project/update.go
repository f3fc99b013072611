package project

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/forms"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project's name or description",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	projectID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	existing, found := cliInstance.Store.ProjectByID(projectID)
	if !found {
		_ = formatter.Error("NOT_FOUND", fmt.Sprintf("no project with id %s", projectID))
		os.Exit(cli.ExitNotFound)
	}

	// Full-record replace: unchanged flags keep the stored values.
	updated := existing
	if cmd.Flags().Changed("name") {
		updated.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("description") {
		updated.Description, _ = cmd.Flags().GetString("description")
	}

	form := forms.ProjectForm{Name: updated.Name, Description: updated.Description}
	if err := form.Validate(); err != nil {
		_ = formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(cli.ExitValidation)
	}

	cliInstance.Store.UpdateProject(updated)

	if quietMode || jsonOutput {
		return formatter.Success(projectResult{
			ID:          updated.ID,
			Name:        updated.Name,
			Description: updated.Description,
			CreatedAt:   existing.CreatedAt.Format(time.RFC3339),
			Progress:    cliInstance.Store.ProjectProgress(updated.ID),
		})
	}

	fmt.Printf("Updated project %q\n", updated.Name)
	return nil
}
