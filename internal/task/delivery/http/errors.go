package http

import (
	"errors"
	"net/http"

	"task-tracker/internal/task"
	pkgErrors "task-tracker/pkg/errors"
)

var (
	errInvalidID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	errMissingStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "status query parameter is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and are rendered as 500 by response.Error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrInvalidID):
		return errInvalidID
	default:
		return err
	}
}

func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
