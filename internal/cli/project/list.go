package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/cli/styles"
	"github.com/crewdeck/crewdeck/internal/views"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Long: `List projects sorted by creation time, newest first.

Examples:
  # All projects
  crewdeck project list

  # Search name and description
  crewdeck project list --search=website

  # Only projects with every task completed
  crewdeck project list --status=completed
`,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Filter by substring of name or description")
	cmd.Flags().String("status", "all", "Filter by progress: all, in-progress, completed")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	bucket, ok := views.ParseBucket(status)
	if !ok {
		_ = formatter.Error("VALIDATION_ERROR",
			fmt.Sprintf("invalid status filter '%s' (must be: all, in-progress, completed)", status))
		os.Exit(cli.ExitValidation)
	}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	projects := views.Projects(cliInstance.Store, search, bucket)

	if quietMode {
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if jsonOutput {
		results := make([]projectResult, 0, len(projects))
		for _, p := range projects {
			results = append(results, projectResult{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				CreatedAt:   p.CreatedAt.Format(time.RFC3339),
				Progress:    cliInstance.Store.ProjectProgress(p.ID),
			})
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"projects": results,
		})
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		progress := cliInstance.Store.ProjectProgress(p.ID)
		fmt.Printf("  %s  %s", styles.TitleStyle.Render(p.Name), styles.ProgressLabel(progress))
		if p.Description != "" {
			fmt.Printf("  %s", styles.SubtleStyle.Render(p.Description))
		}
		fmt.Println()
		fmt.Printf("    %s\n", styles.SubtleStyle.Render(p.ID))
	}

	return nil
}
