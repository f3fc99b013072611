package models

import (
	"fmt"
	"strings"
)

// TaskStatus is the three-valued task state. Transitions are unrestricted:
// any status may move to any other via a full-record update.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus maps a user-supplied status string to a TaskStatus.
func ParseStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("invalid status '%s' (must be: not-started, in-progress, completed)", s)
	}
	return status, nil
}

// Task is a unit of work within a project. AssignedToID is empty when the
// task has no assignee; it refers to a TeamMember otherwise.
type Task struct {
	ID           string
	Title        string
	Description  string
	StartDate    Date
	DueDate      Date
	Status       TaskStatus
	ProjectID    string
	AssignedToID string
}

// Assigned reports whether the task has an assignee.
func (t Task) Assigned() bool {
	return t.AssignedToID != ""
}
