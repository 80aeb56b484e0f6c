package usecase

import (
	"context"

	"task-tracker/internal/task"
)

// Delete removes a Task by ID. A missing ID yields Deleted=false, not an error.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (task.DeleteOutput, error) {
	if id <= 0 {
		return task.DeleteOutput{}, task.ErrInvalidID
	}

	deleted, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return task.DeleteOutput{}, err
	}

	if deleted {
		uc.removeCalendarEvent(ctx, id)
	}
	return task.DeleteOutput{Deleted: deleted}, nil
}
