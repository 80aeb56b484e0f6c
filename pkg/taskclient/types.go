package taskclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Task mirrors the server representation. DueDate is YYYY-MM-DD or empty.
type Task struct {
	ID          int64  `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	DueDate     string `json:"dueDate"     yaml:"dueDate"`
	Status      string `json:"status"      yaml:"status"`
}

// APIError is a non-200 answer from the server.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
