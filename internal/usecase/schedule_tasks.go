package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/cpm"
	"taskpath/internal/domain"
)

// ScheduleTasksInput contains the parameters for a scheduling run.
type ScheduleTasksInput struct {
	// ExcludeCompleted drops completed tasks from the snapshot before
	// scheduling. Dependencies on excluded tasks then count as already
	// satisfied: the dependent becomes a source starting at the reference
	// time.
	ExcludeCompleted bool
}

// ScheduleTasksOutput contains the computed schedule.
type ScheduleTasksOutput struct {
	Result *cpm.Result
	// Order lists the scheduled task IDs in store order for stable display.
	Order []int
}

// ScheduleTasks is the use case for running the CPM engine over the current
// task snapshot. The engine itself performs no I/O; this use case is the
// boundary that feeds it the store's denormalized snapshot.
type ScheduleTasks struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewScheduleTasks creates a new ScheduleTasks use case.
func NewScheduleTasks(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ScheduleTasks {
	return &ScheduleTasks{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute runs one scheduling pass at the clock's current time.
func (uc *ScheduleTasks) Execute(_ context.Context, in ScheduleTasksInput) (*ScheduleTasksOutput, error) {
	filter := domain.TaskFilter{}
	if in.ExcludeCompleted {
		completed := false
		filter.Completed = &completed
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	res := cpm.Schedule(engineTasks(tasks), uc.clock.Now())

	order := make([]int, 0, len(tasks))
	for _, t := range tasks {
		order = append(order, t.ID)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "schedule", fmt.Sprintf(
			"scheduled %d tasks, project end %s, critical path %v",
			len(tasks), res.ProjectEnd.Format("2006-01-02"), res.CriticalPath))
	}

	return &ScheduleTasksOutput{Result: res, Order: order}, nil
}
