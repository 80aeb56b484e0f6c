package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateOrUpdate persists the task; an existing ID is fully replaced.
	CreateOrUpdate(ctx context.Context, input CreateOrUpdateInput) (CreateOrUpdateOutput, error)
	// Detail returns ErrTaskNotFound when no task has the id.
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// UpdateStatus overwrites only the status of an existing task.
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (UpdateStatusOutput, error)
	// Delete reports whether a task existed and was removed.
	Delete(ctx context.Context, id int64) (DeleteOutput, error)
	ListOverdue(ctx context.Context, input ListOverdueInput) (ListOutput, error)
}
