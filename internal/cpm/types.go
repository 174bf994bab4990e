package cpm

import "time"

// Task is the engine's view of a task: identity, optional due date, and the
// ordered list of dependency IDs. The engine never mutates its input.
type Task struct {
	DueDate       *time.Time
	Title         string
	DependencyIDs []int
	ID            int
	Completed     bool
}

// ScheduledTask carries the computed schedule for a single task.
// The date fields are nil until the corresponding pass has run; a task caught
// in a dependency cycle keeps them nil.
type ScheduledTask struct {
	Task

	EarliestStart  *time.Time
	EarliestFinish *time.Time
	LatestStart    *time.Time
	LatestFinish   *time.Time

	// CriticalPath is the full representative zero-slack chain if this task
	// lies on it, empty otherwise. All members share the same path value.
	CriticalPath []int

	// Duration is the task duration in whole days, always >= 1.
	Duration int

	// Slack is the number of days the task's start may slip without delaying
	// the project end. Never negative.
	Slack float64

	// IsCritical is true when Slack is exactly zero. This is a broader signal
	// than CriticalPath membership: multiple disjoint zero-slack chains can
	// exist while only one is traced.
	IsCritical bool
}

// Scheduled reports whether both passes produced times for the task.
func (s *ScheduledTask) Scheduled() bool {
	return s.EarliestStart != nil && s.LatestStart != nil
}

// Result is the outcome of one scheduling run.
type Result struct {
	// Tasks maps task ID to its computed schedule.
	Tasks map[int]*ScheduledTask

	// CriticalPath is the single representative zero-slack chain, ordered
	// from source to sink. Empty when no zero-slack sink exists.
	CriticalPath []int

	// ProjectEnd is the maximum earliest finish across all tasks, or the
	// reference time when the task set is empty.
	ProjectEnd time.Time
}
