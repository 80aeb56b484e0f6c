package usecase

import (
	"context"
	"time"

	"task-tracker/internal/task/repository"
	"task-tracker/pkg/gcalendar"
	pkgLog "task-tracker/pkg/log"
)

// Calendar mirrors task due dates into an external calendar.
// *gcalendar.Client satisfies it.
type Calendar interface {
	UpsertAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarConfig selects the calendar that receives due dates. A positive
// Timeout bounds every calendar call.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
	Timeout    time.Duration
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        pkgLog.Logger
	calendar Calendar
	calCfg   CalendarConfig
}

// New creates a new task UseCase implementation without calendar sync.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

// WithCalendar enables best-effort calendar sync after writes.
func (uc *implUseCase) WithCalendar(calendar Calendar, cfg CalendarConfig) *implUseCase {
	uc.calendar = calendar
	uc.calCfg = cfg
	return uc
}
