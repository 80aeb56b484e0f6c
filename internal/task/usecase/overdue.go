package usecase

import (
	"context"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// ListOverdue returns open tasks whose due date lies before input.AsOf.
func (uc *implUseCase) ListOverdue(ctx context.Context, input task.ListOverdueInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		ExcludeStatus: model.StatusCompleted,
		DueBefore:     model.DateOf(input.AsOf),
		OrderBy:       "due_date",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOverdue ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}
