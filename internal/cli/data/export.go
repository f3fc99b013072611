package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/storage"
)

// ExportCmd returns the data export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full state as a JSON blob",
		Long: `Write the full state as a JSON blob, in the exact shape the
store persists: three named arrays of projects, team members and tasks.

Examples:
  crewdeck data export > backup.json
  crewdeck data export --out=backup.json
  crewdeck data export --pretty
`,
		RunE: runExport,
	}

	cmd.Flags().String("out", "", "Write to a file instead of stdout")
	cmd.Flags().Bool("pretty", false, "Indent the JSON output")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	pretty, _ := cmd.Flags().GetBool("pretty")

	formatter := &cli.OutputFormatter{}

	cliInstance, cleanup, err := cli.Resolve(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer cleanup()

	s := cliInstance.Store
	state := storage.FromModels(s.Projects(), s.TeamMembers(), s.Tasks())

	blob, err := storage.Encode(state)
	if err != nil {
		_ = formatter.Error("EXPORT_ERROR", err.Error())
		return err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, blob, "", "  "); err == nil {
			blob = buf.Bytes()
		}
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, append(blob, '\n'), 0o644); err != nil {
			_ = formatter.Error("EXPORT_ERROR", err.Error())
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d projects, %d team members, %d tasks to %s\n",
			len(state.Projects), len(state.TeamMembers), len(state.Tasks), outPath)
		return nil
	}

	fmt.Println(string(blob))
	return nil
}
