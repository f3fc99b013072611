// Package forms validates user input at the submission edge, before it
// reaches the store. The store itself performs no validation and accepts any
// well-typed record; these checks are the only gate between a form and the
// data layer.
package forms

import (
	"strings"

	"github.com/crewdeck/crewdeck/internal/models"
)

// ProjectForm carries project fields as submitted.
type ProjectForm struct {
	Name        string
	Description string
}

// Validate checks the form; the name must be non-blank.
func (f ProjectForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// TeamMemberForm carries team member fields as submitted.
type TeamMemberForm struct {
	Name      string
	Role      string
	ProjectID string
}

// Validate checks the form. Role is free text and never rejected.
func (f TeamMemberForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	if f.ProjectID == "" {
		return ErrProjectRequired
	}
	return nil
}

// TaskForm carries task fields as submitted.
type TaskForm struct {
	Title        string
	Description  string
	StartDate    models.Date
	DueDate      models.Date
	Status       models.TaskStatus
	ProjectID    string
	AssignedToID string
}

// Validate checks the form: the title must be non-blank, both dates must be
// set, the due date must not precede the start date, and the status must be
// one of the three known values.
func (f TaskForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if f.StartDate.IsZero() || f.DueDate.IsZero() {
		return ErrDatesRequired
	}
	if f.DueDate.Before(f.StartDate) {
		return ErrDueBeforeStart
	}
	if !f.Status.Valid() {
		return ErrInvalidStatus
	}
	if f.ProjectID == "" {
		return ErrProjectRequired
	}
	return nil
}
