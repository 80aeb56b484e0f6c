package gcalendar

import (
	"fmt"
	"strconv"
	"strings"
)

const taskEventPrefix = "task"

// TaskEventID is the event id a task's due date is stored under. Google only
// accepts base32hex characters, which the prefix plus decimal digits satisfies.
func TaskEventID(taskID int64) string {
	return fmt.Sprintf("%s%d", taskEventPrefix, taskID)
}

// ParseTaskEventID reverses TaskEventID. ok is false for events that were
// not created by task sync.
func ParseTaskEventID(eventID string) (taskID int64, ok bool) {
	digits, found := strings.CutPrefix(eventID, taskEventPrefix)
	if !found {
		return 0, false
	}
	id, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
