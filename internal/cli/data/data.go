// Package data holds the cli commands that operate on the stored blob as a
// whole: export, import and clear.
package data

import (
	"github.com/spf13/cobra"
)

// Cmd returns the parent data command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import or clear the stored data",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}
