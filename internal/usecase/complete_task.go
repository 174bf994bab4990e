package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/domain"
)

// CompleteTaskInput contains the parameters for completing or reopening a task.
type CompleteTaskInput struct {
	ID     int  // Task ID (required)
	Reopen bool // Reopen instead of complete
}

// CompleteTask is the use case for marking a task completed (or reopening it).
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute toggles the task's completion state.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) error {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	task.Completed = !in.Reopen
	if err := uc.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		action := "completed"
		if in.Reopen {
			action = "reopened"
		}
		uc.logger.Info(in.ID, "task", action)
	}

	return nil
}
