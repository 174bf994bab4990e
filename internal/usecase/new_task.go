// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"taskpath/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	DueDate       *time.Time // Due date (optional)
	Title         string     // Task title (required)
	Description   string     // Task description (optional)
	Labels        []string   // Labels (optional)
	DependencyIDs []int      // IDs of tasks the new task depends on (optional)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	TaskID int // The ID of the created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input. Dependency IDs must refer
// to existing tasks; a freshly created task has no dependents yet, so its
// dependencies can never introduce a cycle.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	var deps []int
	for _, dep := range in.DependencyIDs {
		t, err := uc.tasks.Get(dep)
		if err != nil {
			return nil, fmt.Errorf("get dependency task: %w", err)
		}
		if t == nil {
			return nil, fmt.Errorf("%w: %d", domain.ErrDependencyNotFound, dep)
		}
		deps = append(deps, dep)
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		DueDate:       in.DueDate,
		Labels:        in.Labels,
		DependencyIDs: deps,
		Created:       uc.clock.Now(),
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", in.Title))
	}

	return &NewTaskOutput{TaskID: id}, nil
}
