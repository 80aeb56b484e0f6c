package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processID parses the :id path parameter.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processCreateReq binds and validates the task request body.
func (h *handler) processCreateReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, req.validate()
}

// processUpdateReq binds the task body; the path id replaces any body id.
func (h *handler) processUpdateReq(c *gin.Context) (taskReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return taskReq{}, err
	}

	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	req.ID = id
	return req, req.validate()
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processUpdateStatusReq binds the path id and the required status query.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return updateStatusReq{}, err
	}

	var req updateStatusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	req.ID = id
	return req, req.validate()
}
