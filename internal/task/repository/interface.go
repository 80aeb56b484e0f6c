package repository

import (
	"context"

	"task-tracker/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	// SaveTask inserts or fully replaces a task. ID 0 generates a new id.
	SaveTask(ctx context.Context, opt SaveTaskOptions) (model.Task, error)
	// GetOneTask returns a zero-value Task (ID == 0) when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// DeleteTask reports whether a row was removed.
	DeleteTask(ctx context.Context, id int64) (bool, error)
}
