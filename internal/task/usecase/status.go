package usecase

import (
	"context"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// UpdateStatus overwrites the status of an existing Task and leaves every
// other field as stored. Any status string is accepted.
func (uc *implUseCase) UpdateStatus(ctx context.Context, input task.UpdateStatusInput) (task.UpdateStatusOutput, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return task.UpdateStatusOutput{}, err
	}

	current := existing.Task
	t, err := uc.repo.SaveTask(ctx, repo.SaveTaskOptions{
		ID:          current.ID,
		Title:       current.Title,
		Description: current.Description,
		DueDate:     current.DueDate,
		Status:      input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus SaveTask: %v", err)
		return task.UpdateStatusOutput{}, err
	}

	uc.syncCalendar(ctx, t)
	return task.UpdateStatusOutput{Task: t}, nil
}
