package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/store"
	"github.com/crewdeck/crewdeck/internal/testutil"
)

func TestCreateTask_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectID := c.Store.AddProject("Website Redesign", "")
	memberID := c.Store.AddTeamMember("Ada", "Developer", projectID)

	t.Run("Create with explicit dates and assignee", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, CreateCmd(), []string{
			"--title", "Fix login bug",
			"--project", projectID,
			"--start", "2026-09-01",
			"--due", "2026-09-15",
			"--assignee", memberID,
			"--quiet",
		})
		assert.NoError(t, err)

		created, found := c.Store.TaskByID(strings.TrimSpace(output))
		assert.True(t, found)
		assert.Equal(t, "Fix login bug", created.Title)
		assert.Equal(t, models.NewDate(2026, 9, 1), created.StartDate)
		assert.Equal(t, models.NewDate(2026, 9, 15), created.DueDate)
		assert.Equal(t, models.StatusNotStarted, created.Status)
		assert.Equal(t, projectID, created.ProjectID)
		assert.Equal(t, memberID, created.AssignedToID)
	})

	t.Run("Start date defaults to today", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, CreateCmd(), []string{
			"--title", "Write release notes",
			"--project", projectID,
			"--due", "2999-01-01",
			"--quiet",
		})
		assert.NoError(t, err)

		created, found := c.Store.TaskByID(strings.TrimSpace(output))
		assert.True(t, found)
		assert.False(t, created.StartDate.IsZero())
		assert.False(t, created.Assigned())
	})

	t.Run("JSON output carries the record", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, CreateCmd(), []string{
			"--title", "Review PR",
			"--project", projectID,
			"--start", "2026-09-01",
			"--due", "2026-09-02",
			"--status", "in-progress",
			"--json",
		})
		assert.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])

		payload, ok := result["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "Review PR", payload["title"])
		assert.Equal(t, "in-progress", payload["status"])
		assert.Equal(t, "2026-09-02", payload["dueDate"])
		assert.Equal(t, projectID, payload["projectId"])
	})
}

func TestListTasks_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectA := c.Store.AddProject("Alpha", "")
	projectB := c.Store.AddProject("Beta", "")

	lateID := c.Store.AddTask(store.AddTaskRequest{
		Title: "Later work", ProjectID: projectA,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 9, 30),
		Status: models.StatusNotStarted,
	})
	soonID := c.Store.AddTask(store.AddTaskRequest{
		Title: "Urgent fix", Description: "login page", ProjectID: projectA,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 9, 1),
		Status: models.StatusInProgress,
	})
	otherID := c.Store.AddTask(store.AddTaskRequest{
		Title: "Elsewhere", ProjectID: projectB,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 9, 10),
		Status: models.StatusInProgress,
	})

	t.Run("Sorted by due date ascending", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, ListCmd(), []string{"--quiet"})
		assert.NoError(t, err)

		ids := strings.Fields(output)
		assert.Equal(t, []string{soonID, otherID, lateID}, ids)
	})

	t.Run("Limit to one project", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, ListCmd(), []string{"--project", projectB, "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, otherID, strings.TrimSpace(output))
	})

	t.Run("Search matches title and description", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, ListCmd(), []string{"--search", "LOGIN", "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, soonID, strings.TrimSpace(output))
	})

	t.Run("Filter by status", func(t *testing.T) {
		output, err := testutil.ExecuteCommand(t, ctx, ListCmd(), []string{"--status", "not-started", "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, lateID, strings.TrimSpace(output))
	})
}

func TestUpdateTask_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectID := c.Store.AddProject("Alpha", "")
	memberID := c.Store.AddTeamMember("Ada", "Developer", projectID)
	taskID := c.Store.AddTask(store.AddTaskRequest{
		Title: "Original", Description: "keep me", ProjectID: projectID,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
		Status: models.StatusNotStarted, AssignedToID: memberID,
	})

	t.Run("Retitle keeps the rest", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, UpdateCmd(), []string{
			taskID,
			"--title", "Renamed",
			"--quiet",
		})
		assert.NoError(t, err)

		updated, found := c.Store.TaskByID(taskID)
		assert.True(t, found)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "keep me", updated.Description)
		assert.Equal(t, memberID, updated.AssignedToID)
		assert.Equal(t, models.StatusNotStarted, updated.Status)
	})

	t.Run("Move the due date", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, UpdateCmd(), []string{
			taskID,
			"--due", "2026-08-20",
			"--quiet",
		})
		assert.NoError(t, err)

		updated, _ := c.Store.TaskByID(taskID)
		assert.Equal(t, models.NewDate(2026, 8, 20), updated.DueDate)
	})

	t.Run("Empty assignee unassigns", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, UpdateCmd(), []string{
			taskID,
			"--assignee", "",
			"--quiet",
		})
		assert.NoError(t, err)

		updated, _ := c.Store.TaskByID(taskID)
		assert.False(t, updated.Assigned())
	})
}

func TestTaskStatus_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectID := c.Store.AddProject("Alpha", "")
	taskID := c.Store.AddTask(store.AddTaskRequest{
		Title: "Two-step", ProjectID: projectID,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
		Status: models.StatusNotStarted,
	})

	t.Run("Advance to completed", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, StatusCmd(), []string{taskID, "completed", "--quiet"})
		assert.NoError(t, err)

		updated, _ := c.Store.TaskByID(taskID)
		assert.Equal(t, models.StatusCompleted, updated.Status)
		assert.Equal(t, 100, c.Store.ProjectProgress(projectID))
	})

	t.Run("Reopen a completed task", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, ctx, StatusCmd(), []string{taskID, "in-progress", "--quiet"})
		assert.NoError(t, err)

		updated, _ := c.Store.TaskByID(taskID)
		assert.Equal(t, models.StatusInProgress, updated.Status)
		assert.Equal(t, 0, c.Store.ProjectProgress(projectID))
	})
}

func TestDeleteTask_Positive(t *testing.T) {
	c, ctx := testutil.SetupCLI(t)

	projectID := c.Store.AddProject("Alpha", "")
	taskID := c.Store.AddTask(store.AddTaskRequest{
		Title: "Short-lived", ProjectID: projectID,
		StartDate: models.NewDate(2026, 8, 1), DueDate: models.NewDate(2026, 8, 10),
		Status: models.StatusNotStarted,
	})

	_, err := testutil.ExecuteCommand(t, ctx, DeleteCmd(), []string{taskID})
	assert.NoError(t, err)

	_, found := c.Store.TaskByID(taskID)
	assert.False(t, found)

	// The project itself is untouched.
	_, found = c.Store.ProjectByID(projectID)
	assert.True(t, found)
}
