package usecase

import (
	"context"
	"fmt"
	"time"

	"taskpath/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// Nil pointer fields are left unchanged. ClearDueDate removes the due date.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title        *string    // New title (optional)
	Description  *string    // New description (optional)
	DueDate      *time.Time // New due date (optional)
	Labels       []string   // New labels (nil = unchanged)
	ID           int        // Task ID (required)
	ClearDueDate bool       // Remove the due date
}

// EditTask is the use case for editing task fields.
type EditTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute applies the requested field changes.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) error {
	if in.Title == nil && in.Description == nil && in.DueDate == nil &&
		in.Labels == nil && !in.ClearDueDate {
		return domain.ErrNoFieldsToUpdate
	}

	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	if in.Title != nil {
		if *in.Title == "" {
			return domain.ErrEmptyTitle
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.ClearDueDate {
		task.DueDate = nil
	} else if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Labels != nil {
		task.Labels = in.Labels
	}

	if err := uc.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.ID, "task", "updated")
	}

	return nil
}
