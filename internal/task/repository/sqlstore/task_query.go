package sqlstore

import (
	"strings"

	repo "task-tracker/internal/task/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneTask.
// Placeholders are "?" and rebound by the caller.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER BY clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if opt.ExcludeStatus != "" {
		conditions = append(conditions, "status <> ?")
		args = append(args, opt.ExcludeStatus)
	}
	if !opt.DueBefore.IsZero() {
		conditions = append(conditions, "due_date IS NOT NULL AND due_date < ?")
		args = append(args, opt.DueBefore)
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy, ok := orderByClauses[strings.ToLower(strings.TrimSpace(opt.OrderBy))]
	if !ok {
		orderBy = orderByClauses[""]
	}
	parts = append(parts, "ORDER BY "+orderBy)

	return strings.Join(parts, " "), args
}
