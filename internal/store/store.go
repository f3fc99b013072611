// Package store owns the canonical collections of projects, team members and
// tasks. All mutation goes through its operation set; consumers receive
// copies, never aliases into the collections. Every mutating operation
// persists the full state to the blob backend synchronously before returning.
//
// The store is single-owner state: it is not safe for concurrent use and is
// meant to be driven from one logical thread.
package store

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/storage"
)

// Store holds the three collections and the backend they persist to.
// Insertion order is preserved for stable display; callers apply their
// own sorting and filtering on top.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger
	newID   func() string
	now     func() time.Time

	projects []models.Project
	members  []models.TeamMember
	tasks    []models.Task
}

// Open loads the saved state from the backend and returns a ready store.
// A load failure is logged and the store starts from the empty state; it
// never fails to open.
func Open(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  slog.Default(),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := backend.Load()
	if err != nil {
		s.logger.Error("failed to load saved state, starting empty", "error", err)
		state = storage.DefaultState()
	}
	s.projects, s.members, s.tasks = state.ToModels()

	return s
}

// persist writes the full current state to the backend. A save failure is
// logged and swallowed: the in-memory state stays authoritative and the
// durable copy catches up on the next successful save.
func (s *Store) persist() {
	state := storage.FromModels(s.projects, s.members, s.tasks)
	if err := s.backend.Save(state); err != nil {
		s.logger.Error("failed to persist state", "error", err)
	}
}

// AddProject appends a new project and returns its generated id.
// CreatedAt is assigned here, once, from the current instant.
func (s *Store) AddProject(name, description string) string {
	project := models.Project{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}
	s.projects = append(s.projects, project)
	s.persist()
	return project.ID
}

// UpdateProject replaces the project matching p.ID. CreatedAt is immutable:
// the stored value is kept regardless of what the caller passes. Updating an
// unknown id is a no-op.
func (s *Store) UpdateProject(p models.Project) {
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			p.CreatedAt = s.projects[i].CreatedAt
			s.projects[i] = p
			s.persist()
			return
		}
	}
}

// DeleteProject removes the project and cascade-deletes every team member
// and task that references it. Deleting an unknown id is a no-op.
func (s *Store) DeleteProject(id string) {
	if !slices.ContainsFunc(s.projects, func(p models.Project) bool { return p.ID == id }) {
		return
	}

	s.projects = slices.DeleteFunc(s.projects, func(p models.Project) bool {
		return p.ID == id
	})
	s.members = slices.DeleteFunc(s.members, func(m models.TeamMember) bool {
		return m.ProjectID == id
	})
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool {
		return t.ProjectID == id
	})
	s.persist()
}

// AddTeamMember appends a new team member and returns its generated id.
// The projectId is taken as given; the store does not verify it refers to
// an existing project.
func (s *Store) AddTeamMember(name, role, projectID string) string {
	member := models.TeamMember{
		ID:        s.newID(),
		Name:      name,
		Role:      role,
		ProjectID: projectID,
	}
	s.members = append(s.members, member)
	s.persist()
	return member.ID
}

// UpdateTeamMember replaces the member matching m.ID; unknown ids are a no-op.
func (s *Store) UpdateTeamMember(m models.TeamMember) {
	for i := range s.members {
		if s.members[i].ID == m.ID {
			s.members[i] = m
			s.persist()
			return
		}
	}
}

// DeleteTeamMember removes the member and unassigns every task that was
// assigned to them. Tasks are never deleted as a side effect of member
// removal. Deleting an unknown id is a no-op.
func (s *Store) DeleteTeamMember(id string) {
	if !slices.ContainsFunc(s.members, func(m models.TeamMember) bool { return m.ID == id }) {
		return
	}

	s.members = slices.DeleteFunc(s.members, func(m models.TeamMember) bool {
		return m.ID == id
	})
	for i := range s.tasks {
		if s.tasks[i].AssignedToID == id {
			s.tasks[i].AssignedToID = ""
		}
	}
	s.persist()
}

// AddTaskRequest carries the fields for a new task; the store generates
// its id.
type AddTaskRequest struct {
	Title        string
	Description  string
	StartDate    models.Date
	DueDate      models.Date
	Status       models.TaskStatus
	ProjectID    string
	AssignedToID string
}

// AddTask appends a new task and returns its generated id.
func (s *Store) AddTask(req AddTaskRequest) string {
	task := models.Task{
		ID:           s.newID(),
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		Status:       req.Status,
		ProjectID:    req.ProjectID,
		AssignedToID: req.AssignedToID,
	}
	s.tasks = append(s.tasks, task)
	s.persist()
	return task.ID
}

// UpdateTask replaces the task matching t.ID; unknown ids are a no-op.
func (s *Store) UpdateTask(t models.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			s.persist()
			return
		}
	}
}

// DeleteTask removes the task; unknown ids are a no-op.
func (s *Store) DeleteTask(id string) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool {
		return t.ID == id
	})
	if len(s.tasks) != before {
		s.persist()
	}
}

// Clear empties all three collections and removes the stored blob.
// A backend failure is logged and swallowed like any other persistence error.
func (s *Store) Clear() {
	s.projects = nil
	s.members = nil
	s.tasks = nil
	if err := s.backend.Clear(); err != nil {
		s.logger.Error("failed to clear stored state", "error", err)
	}
}

// Projects returns a copy of all projects in insertion order.
func (s *Store) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// TeamMembers returns a copy of all team members in insertion order.
func (s *Store) TeamMembers() []models.TeamMember {
	return slices.Clone(s.members)
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []models.Task {
	return slices.Clone(s.tasks)
}

// ProjectByID returns the matching project, if any.
func (s *Store) ProjectByID(id string) (models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// TeamMemberByID returns the matching team member, if any. A missing id is
// not a fault; the second return value is simply false.
func (s *Store) TeamMemberByID(id string) (models.TeamMember, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// TaskByID returns the matching task, if any.
func (s *Store) TaskByID(id string) (models.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// ProjectProgress returns the percentage of the project's tasks that are
// completed, as an integer 0-100. A project with no tasks is at 0. Halves
// round up (away from zero): 1 of 8 completed reports 13.
func (s *Store) ProjectProgress(projectID string) int {
	total := 0
	completed := 0
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == models.StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ProjectTeamMembers returns the members of the given project in store order.
func (s *Store) ProjectTeamMembers(projectID string) []models.TeamMember {
	var out []models.TeamMember
	for _, m := range s.members {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out
}

// ProjectTasks returns the tasks of the given project in store order.
func (s *Store) ProjectTasks(projectID string) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}
