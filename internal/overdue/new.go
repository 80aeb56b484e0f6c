package overdue

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"task-tracker/internal/task"
	"task-tracker/pkg/datemath"
	pkgLog "task-tracker/pkg/log"
)

// Lister is the slice of task.UseCase the job needs.
type Lister interface {
	ListOverdue(ctx context.Context, input task.ListOverdueInput) (task.ListOutput, error)
}

// Config schedules the job. Schedule is a standard 5-field cron expression
// (descriptors such as @daily work too) evaluated in Timezone.
type Config struct {
	Schedule string
	Timezone string
}

// Job periodically reports tasks that are past due and not completed.
type Job struct {
	uc       Lister
	l        pkgLog.Logger
	dates    *datemath.Parser
	cron     *cron.Cron
	schedule string
	now      func() time.Time
}

// New validates cfg and prepares a stopped job.
func New(uc Lister, l pkgLog.Logger, cfg Config) (*Job, error) {
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid overdue schedule %q: %w", cfg.Schedule, err)
	}

	return &Job{
		uc:       uc,
		l:        l,
		dates:    dates,
		cron:     cron.New(cron.WithLocation(dates.Location())),
		schedule: cfg.Schedule,
		now:      time.Now,
	}, nil
}
