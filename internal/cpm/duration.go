package cpm

import (
	"math"
	"time"
)

// Midnight truncates t to its calendar day, normalized to UTC so that all
// date arithmetic stays in whole days.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveDuration converts an optional due date into a task duration in whole
// days relative to now. A task without a due date takes one day; a due date
// today or in the past is floored at the one-day minimum.
func ResolveDuration(due *time.Time, now time.Time) int {
	if due == nil {
		return 1
	}
	days := int(math.Ceil(Midnight(*due).Sub(Midnight(now)).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
