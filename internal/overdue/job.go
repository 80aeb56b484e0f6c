package overdue

import (
	"context"

	"task-tracker/internal/task"
	"task-tracker/pkg/datemath"
)

// Start registers the job on its schedule and starts the cron goroutine.
// Runs use ctx for logging and store calls.
func (j *Job) Start(ctx context.Context) error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.RunOnce(ctx); err != nil {
			j.l.Errorf(ctx, "overdue.Job: run failed: %v", err)
		}
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.l.Infof(ctx, "overdue.Job: started with schedule %q in %s", j.schedule, j.dates.Location())
	return nil
}

// Stop halts the schedule and waits for a running report to finish.
func (j *Job) Stop() {
	<-j.cron.Stop().Done()
}

// RunOnce logs every overdue task and returns how many there were.
func (j *Job) RunOnce(ctx context.Context) (int, error) {
	today := j.dates.Today(j.now())

	out, err := j.uc.ListOverdue(ctx, task.ListOverdueInput{AsOf: today})
	if err != nil {
		return 0, err
	}

	for _, t := range out.Tasks {
		j.l.Warnf(ctx, "overdue.Job: task=%d %q due %s status=%q", t.ID, t.Title, t.DueDate, t.Status)
	}
	j.l.Infof(ctx, "overdue.Job: %d overdue task(s) as of %s", out.Total, today.Format(datemath.ISODate))
	return out.Total, nil
}
