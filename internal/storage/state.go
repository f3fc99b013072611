package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/crewdeck/crewdeck/internal/models"
)

// State is the serialized shape of the three collections. Field names and
// nesting are fixed: three named arrays in one object, camelCase keys,
// RFC 3339 timestamps, bare YYYY-MM-DD calendar dates, and a JSON null for
// an unassigned task. Encode and Decode round-trip exactly.
type State struct {
	Projects    []ProjectRecord    `json:"projects"`
	TeamMembers []TeamMemberRecord `json:"teamMembers"`
	Tasks       []TaskRecord       `json:"tasks"`
}

type ProjectRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TeamMemberRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ProjectID string `json:"projectId"`
}

type TaskRecord struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	StartDate    models.Date       `json:"startDate"`
	DueDate      models.Date       `json:"dueDate"`
	Status       models.TaskStatus `json:"status"`
	ProjectID    string            `json:"projectId"`
	AssignedToID *string           `json:"assignedToId"`
}

// DefaultState is the empty state: three empty (non-nil) collections, so the
// encoded form is always three arrays rather than nulls.
func DefaultState() State {
	return State{
		Projects:    []ProjectRecord{},
		TeamMembers: []TeamMemberRecord{},
		Tasks:       []TaskRecord{},
	}
}

// Encode serializes the state to its wire form.
func Encode(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a wire blob back into a State. Missing collections come back
// as empty slices, so Decode(Encode(s)) == s for any valid state.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultState(), fmt.Errorf("decode state: %w", err)
	}
	if s.Projects == nil {
		s.Projects = []ProjectRecord{}
	}
	if s.TeamMembers == nil {
		s.TeamMembers = []TeamMemberRecord{}
	}
	if s.Tasks == nil {
		s.Tasks = []TaskRecord{}
	}
	return s, nil
}

// FromModels converts the in-memory collections to their wire shape.
func FromModels(projects []models.Project, members []models.TeamMember, tasks []models.Task) State {
	s := DefaultState()
	for _, p := range projects {
		s.Projects = append(s.Projects, ProjectRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}
	for _, m := range members {
		s.TeamMembers = append(s.TeamMembers, TeamMemberRecord{
			ID:        m.ID,
			Name:      m.Name,
			Role:      m.Role,
			ProjectID: m.ProjectID,
		})
	}
	for _, t := range tasks {
		rec := TaskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			StartDate:   t.StartDate,
			DueDate:     t.DueDate,
			Status:      t.Status,
			ProjectID:   t.ProjectID,
		}
		if t.AssignedToID != "" {
			assignee := t.AssignedToID
			rec.AssignedToID = &assignee
		}
		s.Tasks = append(s.Tasks, rec)
	}
	return s
}

// ToModels converts a wire State back into the in-memory collections.
// A null assignedToId becomes the empty string.
func (s State) ToModels() ([]models.Project, []models.TeamMember, []models.Task) {
	projects := make([]models.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		projects = append(projects, models.Project{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}

	members := make([]models.TeamMember, 0, len(s.TeamMembers))
	for _, m := range s.TeamMembers {
		members = append(members, models.TeamMember{
			ID:        m.ID,
			Name:      m.Name,
			Role:      m.Role,
			ProjectID: m.ProjectID,
		})
	}

	tasks := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		task := models.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			StartDate:   t.StartDate,
			DueDate:     t.DueDate,
			Status:      t.Status,
			ProjectID:   t.ProjectID,
		}
		if t.AssignedToID != nil {
			task.AssignedToID = *t.AssignedToID
		}
		tasks = append(tasks, task)
	}

	return projects, members, tasks
}
