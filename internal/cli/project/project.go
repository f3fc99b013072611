// Package project holds all cli commands related to projects
//
// e.g., crewdeck project ...
package project

import (
	"github.com/spf13/cobra"
)

// Cmd returns the parent project command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// projectResult is the wire/quiet shape of a single project in command output.
type projectResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	Progress    int    `json:"progress"`
}

// GetID implements the quiet-mode contract of cli.OutputFormatter.
func (r projectResult) GetID() string { return r.ID }
