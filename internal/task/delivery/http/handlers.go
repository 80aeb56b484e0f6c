package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// Create godoc
// @Summary     Create or replace a task
// @Description Stores the task. An id of 0 or no id lets the server pick one; an existing id is fully replaced.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /task [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateOrUpdate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateOrUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns all tasks ordered by id, optionally filtered by status.
// @Tags        Task
// @Produce     json
// @Param       status query string false "Filter by status"
// @Success     200 {array}  taskResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /task [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Description Returns a single task by its id.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /task/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Replace a task
// @Description Stores the body under the path id. The path id wins over any id in the body.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body taskReq true "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /task/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateOrUpdate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateOrUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newTaskResp(output.Task))
}

// UpdateStatus godoc
// @Summary     Update task status
// @Description Overwrites only the status of an existing task.
// @Tags        Task
// @Produce     json
// @Param       id     path  int    true "Task ID"
// @Param       status query string true "New status"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /task/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task. The body is true when a task was removed and false when none had the id.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {boolean} boolean
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /task/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, output.Deleted)
}
