package data

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
)

// ClearCmd returns the data clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored data",
		Long: `Delete every project, team member and task, and remove the
stored blob. This is permanent; pass --force to confirm.
`,
		RunE: runClear,
	}

	cmd.Flags().Bool("force", false, "Confirm deleting everything")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	formatter := &cli.OutputFormatter{}

	if !force {
		_ = formatter.ErrorWithSuggestion("CONFIRMATION_REQUIRED",
			"this deletes every project, team member and task",
			"re-run with --force to confirm")
		os.Exit(cli.ExitUsage)
	}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	cliInstance.Store.Clear()

	fmt.Println("All data cleared")
	return nil
}
