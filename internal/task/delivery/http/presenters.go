package http

import (
	"task-tracker/internal/model"
	"task-tracker/internal/task"
)

// --- Request DTOs ---

type taskReq struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     model.Date `json:"dueDate" swaggertype:"string" format:"date" example:"2023-09-20"`
	Status      string     `json:"status"`
}

func (r taskReq) validate() error {
	if r.ID < 0 {
		return errInvalidID
	}
	return nil
}

func (r taskReq) toInput() task.CreateOrUpdateInput {
	return task.CreateOrUpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      r.Status,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: r.Status}
}

// ---

type updateStatusReq struct {
	ID     int64  `form:"-"` // populated from URI param
	Status string `form:"status"`
}

func (r updateStatusReq) validate() error {
	if r.Status == "" {
		return errMissingStatus
	}
	return nil
}

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{
		ID:     r.ID,
		Status: r.Status,
	}
}

// --- Response DTOs ---

// taskResp is returned as the whole response body, without an envelope.
type taskResp struct {
	ID          int64      `json:"id"          example:"1"`
	Title       string     `json:"title"       example:"Writing"`
	Description string     `json:"description" example:"ABCD"`
	DueDate     model.Date `json:"dueDate"     swaggertype:"string" format:"date" example:"2023-09-20"`
	Status      string     `json:"status"      example:"started"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
	}
}

func (h *handler) newListResp(out task.ListOutput) []taskResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasks
}
