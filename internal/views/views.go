// Package views implements the list-screen filtering and sorting policy.
// The store only preserves insertion order; everything here is caller-side
// presentation logic layered over the store's derived values.
package views

import (
	"sort"
	"strings"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/store"
)

// Bucket selects projects by their derived progress.
type Bucket string

const (
	BucketAll        Bucket = "all"
	BucketInProgress Bucket = "in-progress" // progress < 100
	BucketCompleted  Bucket = "completed"   // progress == 100
)

// ParseBucket maps a user-supplied filter string to a Bucket.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketAll:
		return BucketAll, true
	case BucketInProgress:
		return BucketInProgress, true
	case BucketCompleted:
		return BucketCompleted, true
	}
	return "", false
}

// Projects returns the dashboard view of the store: projects matching the
// query (case-insensitive substring on name or description) and the progress
// bucket, sorted by creation time, newest first.
func Projects(s *store.Store, query string, bucket Bucket) []models.Project {
	q := strings.ToLower(query)

	var out []models.Project
	for _, p := range s.Projects() {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}

		switch bucket {
		case BucketCompleted:
			if s.ProjectProgress(p.ID) != 100 {
				continue
			}
		case BucketInProgress:
			if s.ProjectProgress(p.ID) >= 100 {
				continue
			}
		}

		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Tasks returns the task-list view: tasks matching the query
// (case-insensitive substring on title or description) and the exact status
// (empty status means all), sorted by due date, closest first.
func Tasks(tasks []models.Task, query string, status models.TaskStatus) []models.Task {
	q := strings.ToLower(query)

	var out []models.Task
	for _, t := range tasks {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}
