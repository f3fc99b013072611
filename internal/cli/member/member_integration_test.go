package member

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/store"
	"github.com/crewdeck/crewdeck/internal/testutil"
)

func TestAddTeamMember_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)
	projectID := c.Store.AddProject("Website Redesign", "")

	t.Run("Add with explicit role", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, AddCmd(), []string{
			"--name", "Ada Lovelace",
			"--role", "Developer",
			"--project", projectID,
			"--quiet",
		})
		assert.NoError(t, err)

		added, found := c.Store.TeamMemberByID(strings.TrimSpace(output))
		assert.True(t, found)
		assert.Equal(t, "Ada Lovelace", added.Name)
		assert.Equal(t, "Developer", added.Role)
		assert.Equal(t, projectID, added.ProjectID)
	})

	t.Run("Role defaults to the first suggestion", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, AddCmd(), []string{
			"--name", "Grace Hopper",
			"--project", projectID,
			"--quiet",
		})
		assert.NoError(t, err)

		added, found := c.Store.TeamMemberByID(strings.TrimSpace(output))
		assert.True(t, found)
		assert.Equal(t, models.SuggestedRoles[0], added.Role)
	})

	t.Run("JSON output carries the record", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, AddCmd(), []string{
			"--name", "Margaret Hamilton",
			"--role", "Tester",
			"--project", projectID,
			"--json",
		})
		assert.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])

		payload, ok := result["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "Margaret Hamilton", payload["name"])
		assert.Equal(t, "Tester", payload["role"])
		assert.Equal(t, projectID, payload["projectId"])
	})
}

func TestListTeamMembers_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectA := c.Store.AddProject("Alpha", "")
	projectB := c.Store.AddProject("Beta", "")

	adaID := c.Store.AddTeamMember("Ada", "Developer", projectA)
	graceID := c.Store.AddTeamMember("Grace", "Tester", projectB)

	t.Run("List all members", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, ListCmd(), []string{"--quiet"})
		assert.NoError(t, err)

		ids := strings.Fields(output)
		assert.Equal(t, []string{adaID, graceID}, ids)
	})

	t.Run("Limit to one project", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, ListCmd(), []string{"--project", projectB, "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, graceID, strings.TrimSpace(output))
	})
}

func TestUpdateTeamMember_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectA := c.Store.AddProject("Alpha", "")
	projectB := c.Store.AddProject("Beta", "")
	memberID := c.Store.AddTeamMember("Ada", "Developer", projectA)

	t.Run("Change role only", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, UpdateCmd(), []string{
			memberID,
			"--role", "Tech Lead",
			"--quiet",
		})
		assert.NoError(t, err)

		updated, found := c.Store.TeamMemberByID(memberID)
		assert.True(t, found)
		assert.Equal(t, "Ada", updated.Name)
		assert.Equal(t, "Tech Lead", updated.Role)
		assert.Equal(t, projectA, updated.ProjectID)
	})

	t.Run("Move to another project", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, UpdateCmd(), []string{
			memberID,
			"--project", projectB,
			"--quiet",
		})
		assert.NoError(t, err)

		updated, _ := c.Store.TeamMemberByID(memberID)
		assert.Equal(t, projectB, updated.ProjectID)
	})
}

func TestRemoveTeamMember_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectID := c.Store.AddProject("Alpha", "")
	adaID := c.Store.AddTeamMember("Ada", "Developer", projectID)
	graceID := c.Store.AddTeamMember("Grace", "Tester", projectID)

	adaTask := c.Store.AddTask(store.AddTaskRequest{
		Title: "Hers", ProjectID: projectID,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
		Status: models.StatusInProgress, AssignedToID: adaID,
	})
	graceTask := c.Store.AddTask(store.AddTaskRequest{
		Title: "Not hers", ProjectID: projectID,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
		Status: models.StatusInProgress, AssignedToID: graceID,
	})

	output, err := testutil.ExecuteCommand(t, ctx, RemoveCmd(), []string{adaID, "--json"})
	assert.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	payload, ok := result["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), payload["unassignedTasks"])

	_, found := c.Store.TeamMemberByID(adaID)
	assert.False(t, found)

	// Her task survives unassigned; the other assignment is untouched.
	orphaned, found := c.Store.TaskByID(adaTask)
	assert.True(t, found)
	assert.False(t, orphaned.Assigned())

	kept, _ := c.Store.TaskByID(graceTask)
	assert.Equal(t, graceID, kept.AssignedToID)
}
