package usecase

import (
	"context"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (task.DetailOutput, error) {
	if id <= 0 {
		return task.DetailOutput{}, task.ErrInvalidID
	}

	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == 0 {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// List returns every Task ordered by ID, optionally narrowed to one status.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}
