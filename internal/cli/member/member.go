// Package member holds all cli commands related to team members
//
// e.g., crewdeck member ...
package member

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/models"
)

// Cmd returns the parent member command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

// roleHelp lists the suggested roles for flag help text. Any free-text role
// is accepted; the list is advisory.
func roleHelp() string {
	return "Member role, e.g. " + strings.Join(models.SuggestedRoles, ", ")
}

// memberResult is the wire/quiet shape of a member in command output.
type memberResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ProjectID string `json:"projectId"`
}

// GetID implements the quiet-mode contract of cli.OutputFormatter.
func (r memberResult) GetID() string { return r.ID }
