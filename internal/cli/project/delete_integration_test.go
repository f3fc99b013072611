package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/store"
	"github.com/crewdeck/crewdeck/internal/testutil"
)

func TestDeleteProject_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	t.Run("Empty project deletes without force", func(t *testing.T) {
		id := c.Store.AddProject("Scratch", "")

		_, err := testutil.ExecuteCommand(t, ctx, DeleteCmd(), []string{id})
		assert.NoError(t, err)

		_, found := c.Store.ProjectByID(id)
		assert.False(t, found)
	})

	t.Run("Force delete cascades and leaves neighbors alone", func(t *testing.T) {
		doomedID := c.Store.AddProject("Doomed", "")
		survivorID := c.Store.AddProject("Survivor", "")

		doomedMember := c.Store.AddTeamMember("Ada", "Developer", doomedID)
		survivorMember := c.Store.AddTeamMember("Grace", "Developer", survivorID)

		doomedTask := c.Store.AddTask(store.AddTaskRequest{
			Title: "Gone with the project", ProjectID: doomedID,
			StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
			Status: models.StatusNotStarted,
		})
		survivorTask := c.Store.AddTask(store.AddTaskRequest{
			Title: "Still here", ProjectID: survivorID,
			StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
			Status: models.StatusNotStarted, AssignedToID: survivorMember,
		})

		output, err := testutil.ExecuteCommand(t, ctx, DeleteCmd(), []string{doomedID, "--force", "--json"})
		assert.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		payload, ok := result["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, float64(1), payload["deletedMembers"])
		assert.Equal(t, float64(1), payload["deletedTasks"])

		_, found := c.Store.ProjectByID(doomedID)
		assert.False(t, found)
		_, found = c.Store.TeamMemberByID(doomedMember)
		assert.False(t, found)
		_, found = c.Store.TaskByID(doomedTask)
		assert.False(t, found)

		// The other project is untouched, assignment included.
		_, found = c.Store.ProjectByID(survivorID)
		assert.True(t, found)
		kept, found := c.Store.TaskByID(survivorTask)
		assert.True(t, found)
		assert.Equal(t, survivorMember, kept.AssignedToID)
	})
}
