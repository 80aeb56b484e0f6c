package repository

import "task-tracker/internal/model"

// SaveTaskOptions holds the full record to upsert.
type SaveTaskOptions struct {
	ID          int64
	Title       string
	Description string
	DueDate     model.Date
	Status      string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID int64
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	Status        string
	ExcludeStatus string
	DueBefore     model.Date
	OrderBy       string
}
