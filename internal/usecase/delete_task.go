package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID int // Task ID (required)
}

// DeleteTask is the use case for deleting a task. The store unlinks the
// deleted ID from every remaining task's dependency list.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	if err := uc.tasks.Delete(in.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.ID, "task", fmt.Sprintf("deleted: %q", task.Title))
	}

	return nil
}
