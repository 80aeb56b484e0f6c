package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"task-tracker/internal/model"
	repo "task-tracker/internal/task/repository"
)

// SaveTask upserts a task. A zero ID inserts a new row with a generated id.
func (r *implRepository) SaveTask(ctx context.Context, opt repo.SaveTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:          opt.ID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Status:      opt.Status,
	}

	if t.ID == 0 {
		id, err := r.insertTask(ctx, t)
		if err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.scope("SaveTask"), err)
			return model.Task{}, repo.ErrFailedToSave
		}
		t.ID = id
		return t, nil
	}

	query, args, err := r.bind(r.dialect.UpsertSQL(tableTasks, taskColumns, "id", taskUpdateColumns), t)
	if err != nil {
		r.l.Errorf(ctx, "%s bind: %v", r.scope("SaveTask"), err)
		return model.Task{}, repo.ErrFailedToSave
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("SaveTask"), err)
		return model.Task{}, repo.ErrFailedToSave
	}

	// Explicit ids bypass the id generator on some databases.
	if seq := r.dialect.SyncSequenceSQL(tableTasks, "id"); seq != "" {
		if _, err := r.db.ExecContext(ctx, seq); err != nil {
			r.l.Warnf(ctx, "%s sync sequence: %v", r.scope("SaveTask"), err)
		}
	}

	return t, nil
}

func (r *implRepository) insertTask(ctx context.Context, t model.Task) (int64, error) {
	cols := taskUpdateColumns
	named := make([]string, len(cols))
	for i, col := range cols {
		named[i] = ":" + col
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableTasks, strings.Join(cols, ", "), strings.Join(named, ", "))

	if r.dialect.SupportsReturning() {
		q, args, err := r.bind(query+" RETURNING id", t)
		if err != nil {
			return 0, err
		}
		var id int64
		if err := r.db.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	q, args, err := r.bind(query, t)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetOneTask retrieves a single Task by id.
// Returns zero-value Task (ID == 0) when not found; not-found is not an error here.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := r.db.Rebind(fmt.Sprintf("%s WHERE %s LIMIT 1", selectTaskColumns, mods))

	var t model.Task
	err := r.db.GetContext(ctx, &t, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every task matching opt. The result is never nil.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := r.db.Rebind(fmt.Sprintf("%s %s", selectTaskColumns, mods))

	tasks := make([]model.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// DeleteTask removes a task by id and reports whether a row was removed.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`DELETE FROM tasks WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.scope("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
