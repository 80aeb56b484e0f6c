package usecase

import (
	"context"
	"fmt"

	"task-tracker/internal/model"
	"task-tracker/pkg/gcalendar"
)

// syncCalendar mirrors t's due date as an all-day event, or removes the
// event when t has no due date. Failures are logged only.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	if t.DueDate.IsZero() {
		uc.removeCalendarEvent(ctx, t.ID)
		return
	}

	ctx, cancel := uc.calendarContext(ctx)
	defer cancel()

	_, err := uc.calendar.UpsertAllDayEvent(ctx, gcalendar.AllDayEventRequest{
		CalendarID:  uc.calCfg.CalendarID,
		EventID:     gcalendar.TaskEventID(t.ID),
		Summary:     fmt.Sprintf("[%s] %s", t.Status, t.Title),
		Description: t.Description,
		Date:        t.DueDate.Time(),
		Timezone:    uc.calCfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar: task=%d calendar upsert failed (non-fatal): %v", t.ID, err)
	}
}

func (uc *implUseCase) removeCalendarEvent(ctx context.Context, taskID int64) {
	if uc.calendar == nil {
		return
	}
	ctx, cancel := uc.calendarContext(ctx)
	defer cancel()

	if err := uc.calendar.DeleteEvent(ctx, uc.calCfg.CalendarID, gcalendar.TaskEventID(taskID)); err != nil {
		uc.l.Warnf(ctx, "uc.removeCalendarEvent: task=%d calendar delete failed (non-fatal): %v", taskID, err)
	}
}

func (uc *implUseCase) calendarContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.calCfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.calCfg.Timeout)
}
