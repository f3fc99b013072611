package project

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/forms"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  crewdeck project create --name="Website Redesign"

  # JSON output for scripts
  crewdeck project create --name="Website Redesign" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(crewdeck project create --name="Website Redesign" --quiet)

  # With description
  crewdeck project create \
    --name="Website Redesign" \
    --description="Refresh the marketing site"
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	_ = cmd.MarkFlagRequired("name")

	// Optional flags
	cmd.Flags().String("description", "", "Project description")

	// Script-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	form := forms.ProjectForm{Name: name, Description: description}
	if err := form.Validate(); err != nil {
		_ = formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(cli.ExitValidation)
	}

	id := cliInstance.Store.AddProject(name, description)
	created, _ := cliInstance.Store.ProjectByID(id)

	result := projectResult{
		ID:          id,
		Name:        created.Name,
		Description: created.Description,
		CreatedAt:   created.CreatedAt.Format(time.RFC3339),
	}

	if quietMode || jsonOutput {
		return formatter.Success(result)
	}

	fmt.Printf("Created project %q (%s)\n", created.Name, id)
	return nil
}
