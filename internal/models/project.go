package models

import "time"

// Project is the top-level unit of work, containing team members and tasks.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
