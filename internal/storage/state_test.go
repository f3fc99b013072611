package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/crewdeck/crewdeck/internal/models"
)

func sampleModels() ([]models.Project, []models.TeamMember, []models.Task) {
	created := time.Date(2025, time.April, 2, 15, 4, 5, 0, time.UTC)

	projects := []models.Project{
		{ID: "p1", Name: "Launch", Description: "Q2 launch", CreatedAt: created},
		{ID: "p2", Name: "Maintenance", Description: "", CreatedAt: created.Add(time.Hour)},
	}
	members := []models.TeamMember{
		{ID: "m1", Name: "Ada", Role: "Developer", ProjectID: "p1"},
	}
	tasks := []models.Task{
		{
			ID:           "t1",
			Title:        "Ship it",
			Description:  "final push",
			StartDate:    models.NewDate(2025, time.April, 1),
			DueDate:      models.NewDate(2025, time.April, 30),
			Status:       models.StatusInProgress,
			ProjectID:    "p1",
			AssignedToID: "m1",
		},
		{
			ID:        "t2",
			Title:     "Backlog item",
			StartDate: models.NewDate(2025, time.May, 1),
			DueDate:   models.NewDate(2025, time.May, 2),
			Status:    models.StatusNotStarted,
			ProjectID: "p2",
		},
	}
	return projects, members, tasks
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	projects, members, tasks := sampleModels()
	state := FromModels(projects, members, tasks)

	data, err := Encode(state)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	gotProjects, gotMembers, gotTasks := back.ToModels()
	if len(gotProjects) != 2 || len(gotMembers) != 1 || len(gotTasks) != 2 {
		t.Fatalf("round trip changed collection sizes: %d/%d/%d",
			len(gotProjects), len(gotMembers), len(gotTasks))
	}

	if gotProjects[0] != projects[0] {
		t.Errorf("project round trip mismatch: %+v != %+v", gotProjects[0], projects[0])
	}
	if gotMembers[0] != members[0] {
		t.Errorf("member round trip mismatch: %+v != %+v", gotMembers[0], members[0])
	}
	if gotTasks[0] != tasks[0] {
		t.Errorf("task round trip mismatch: %+v != %+v", gotTasks[0], tasks[0])
	}
	if gotTasks[1].AssignedToID != "" {
		t.Errorf("unassigned task came back with assignee %q", gotTasks[1].AssignedToID)
	}
}

func TestEncodeWireShape(t *testing.T) {
	projects, members, tasks := sampleModels()
	data, err := Encode(FromModels(projects, members, tasks))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	blob := string(data)

	// Fixed key names, camelCase.
	for _, key := range []string{
		`"projects":`, `"teamMembers":`, `"tasks":`,
		`"createdAt":`, `"projectId":`, `"assignedToId":`,
		`"startDate":"2025-04-01"`, `"dueDate":"2025-04-30"`,
		`"status":"in-progress"`,
	} {
		if !strings.Contains(blob, key) {
			t.Errorf("encoded blob missing %s:\n%s", key, blob)
		}
	}

	// Unassigned tasks serialize as an explicit null.
	if !strings.Contains(blob, `"assignedToId":null`) {
		t.Errorf("unassigned task should encode assignedToId as null:\n%s", blob)
	}
}

func TestEncodeEmptyStateUsesArrays(t *testing.T) {
	data, err := Encode(DefaultState())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := `{"projects":[],"teamMembers":[],"tasks":[]}`
	if string(data) != want {
		t.Errorf("empty state = %s, want %s", data, want)
	}
}

func TestDecodeNormalizesMissingCollections(t *testing.T) {
	s, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s.Projects == nil || s.TeamMembers == nil || s.Tasks == nil {
		t.Error("missing collections should decode to empty slices, not nil")
	}
}

func TestDecodeMalformedBlob(t *testing.T) {
	s, err := Decode([]byte(`{"projects": "nope"`))
	if err == nil {
		t.Fatal("expected error for malformed blob")
	}
	// Even on error the returned state is usable.
	if s.Projects == nil {
		t.Error("error path should still return the default state")
	}
}
