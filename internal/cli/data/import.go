package data

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/storage"
)

// ImportCmd returns the data import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored state with a JSON blob",
		Long: `Replace the stored state with a previously exported JSON blob.
The current state is overwritten entirely.

Examples:
  crewdeck data import backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	formatter := &cli.OutputFormatter{}

	blob, err := os.ReadFile(path)
	if err != nil {
		_ = formatter.Error("IMPORT_ERROR", err.Error())
		return err
	}

	state, err := storage.Decode(blob)
	if err != nil {
		_ = formatter.Error("DATA_ERROR", fmt.Sprintf("%s does not hold a valid export: %v", path, err))
		os.Exit(cli.ExitDataErr)
	}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	// Write the blob through the backend; the next load picks it up.
	if err := cliInstance.Backend().Save(state); err != nil {
		_ = formatter.Error("IMPORT_ERROR", err.Error())
		return err
	}

	fmt.Printf("Imported %d projects, %d team members, %d tasks\n",
		len(state.Projects), len(state.TeamMembers), len(state.Tasks))
	return nil
}
