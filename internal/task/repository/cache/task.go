package cache

import (
	"context"

	"task-tracker/internal/model"
	repo "task-tracker/internal/task/repository"
)

func (r *implRepository) SaveTask(ctx context.Context, opt repo.SaveTaskOptions) (model.Task, error) {
	r.invalidate(opt.ID)
	t, err := r.next.SaveTask(ctx, opt)
	if t.ID != 0 {
		r.invalidate(t.ID)
	} else {
		r.invalidate(opt.ID)
	}
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if opt.ID == 0 {
		return r.next.GetOneTask(ctx, opt)
	}

	r.mu.Lock()
	if t, ok := r.tasks.Get(opt.ID); ok {
		r.mu.Unlock()
		r.l.Debugf(ctx, "task/repository/cache.GetOneTask: hit id=%d", opt.ID)
		return t, nil
	}
	gen := r.gen
	r.mu.Unlock()

	t, err := r.next.GetOneTask(ctx, opt)
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == 0 {
		return t, nil
	}

	r.mu.Lock()
	if r.gen == gen {
		r.tasks.Add(t.ID, t)
	} else {
		r.l.Debugf(ctx, "task/repository/cache.GetOneTask: skip fill id=%d, written meanwhile", t.ID)
	}
	r.mu.Unlock()
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	return r.next.ListTasks(ctx, opt)
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	r.invalidate(id)
	deleted, err := r.next.DeleteTask(ctx, id)
	r.invalidate(id)
	return deleted, err
}

// invalidate drops id and cancels any fill started before this call.
// Writes call it both before and after reaching next.
func (r *implRepository) invalidate(id int64) {
	r.mu.Lock()
	r.gen++
	if id != 0 {
		r.tasks.Remove(id)
	}
	r.mu.Unlock()
}
