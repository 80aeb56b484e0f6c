package model

// StatusCompleted is the status label of a finished task.
// Any other string is accepted as a status; no transitions are enforced.
const StatusCompleted = "completed"

// Task is the single entity tracked by the service.
type Task struct {
	ID          int64  `json:"id"          db:"id"          yaml:"id"`
	Title       string `json:"title"       db:"title"       yaml:"title"`
	Description string `json:"description" db:"description" yaml:"description"`
	DueDate     Date   `json:"dueDate"     db:"due_date"    yaml:"dueDate"`
	Status      string `json:"status"      db:"status"      yaml:"status"`
}
