package usecase

import (
	"context"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// CreateOrUpdate stores the full task record. An existing ID is replaced.
func (uc *implUseCase) CreateOrUpdate(ctx context.Context, input task.CreateOrUpdateInput) (task.CreateOrUpdateOutput, error) {
	if input.ID < 0 {
		return task.CreateOrUpdateOutput{}, task.ErrInvalidID
	}

	t, err := uc.repo.SaveTask(ctx, repo.SaveTaskOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateOrUpdate SaveTask: %v", err)
		return task.CreateOrUpdateOutput{}, err
	}

	uc.syncCalendar(ctx, t)
	return task.CreateOrUpdateOutput{Task: t}, nil
}
