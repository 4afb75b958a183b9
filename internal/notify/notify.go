// Package notify wraps desktop notifications. Notifications are always
// non-blocking and best-effort; callers ignore the returned error unless
// they have something better to do with it.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Info shows a plain informational notification.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// SaveFailed surfaces a persistence failure without blocking the action
// that triggered it.
func SaveFailed(date string, err error) error {
	return beeep.Alert("day-flow", fmt.Sprintf("Could not save %s: %v", date, err), "")
}

// SlotFinished announces that a timetable slot's timer was finished.
func SlotFinished(heading, elapsed string) error {
	return beeep.Notify("day-flow", fmt.Sprintf("%s finished after %s", heading, elapsed), "")
}
