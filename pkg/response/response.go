package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-tracker/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// JSON sends 200 with data as the whole body, without the envelope.
func JSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error envelope. The status comes from a pkg/errors.HTTPError;
// any other error is rendered as an internal error so details never leak.
func Error(c *gin.Context, err error) {
	code := pkgErrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.AbortWithStatusJSON(code, Resp{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
