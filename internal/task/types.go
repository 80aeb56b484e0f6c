package task

import (
	"time"

	"task-tracker/internal/model"
)

// --- UseCase Inputs ---

// CreateOrUpdateInput carries a full task record. ID 0 asks the store to
// generate one; an existing ID is replaced field by field.
type CreateOrUpdateInput struct {
	ID          int64
	Title       string
	Description string
	DueDate     model.Date
	Status      string
}

type ListInput struct {
	Status string
}

type UpdateStatusInput struct {
	ID     int64
	Status string
}

// ListOverdueInput selects tasks due strictly before AsOf's calendar date
// that are not completed.
type ListOverdueInput struct {
	AsOf time.Time
}

// --- UseCase Outputs ---

type CreateOrUpdateOutput struct {
	Task model.Task
}

type DetailOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type UpdateStatusOutput struct {
	Task model.Task
}

type DeleteOutput struct {
	Deleted bool
}
