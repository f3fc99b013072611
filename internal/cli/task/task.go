// Package task holds all cli commands related to tasks
//
// e.g., crewdeck task ...
package task

import (
	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/models"
)

// Cmd returns the parent task command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// taskResult is the wire/quiet shape of a task in command output.
type taskResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"startDate"`
	DueDate      string `json:"dueDate"`
	Status       string `json:"status"`
	ProjectID    string `json:"projectId"`
	AssignedToID string `json:"assignedToId,omitempty"`
}

// GetID implements the quiet-mode contract of cli.OutputFormatter.
func (r taskResult) GetID() string { return r.ID }

func toResult(t models.Task) taskResult {
	return taskResult{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		StartDate:    t.StartDate.String(),
		DueDate:      t.DueDate.String(),
		Status:       string(t.Status),
		ProjectID:    t.ProjectID,
		AssignedToID: t.AssignedToID,
	}
}
