package forms

import "errors"

// Validation errors surfaced to the user at the point of submission.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrTitleRequired   = errors.New("title is required")
	ErrDatesRequired   = errors.New("start date and due date are required")
	ErrDueBeforeStart  = errors.New("due date cannot be before start date")
	ErrInvalidStatus   = errors.New("status must be one of: not-started, in-progress, completed")
	ErrProjectRequired = errors.New("a project is required")
)
