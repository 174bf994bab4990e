package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrEmptyTitle            = errors.New("title cannot be empty")
	ErrDependencyNotFound    = errors.New("dependency task not found")
	ErrDependencyCycle       = errors.New("dependency would create a cycle")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrNotInitialized        = errors.New("taskpath not initialized (run 'taskpath init' first)")
	ErrInvalidDueDate        = errors.New("invalid due date (expected YYYY-MM-DD)")
	ErrEmptyFile             = errors.New("file is empty")
	ErrNoTasksInFile         = errors.New("no tasks found in file")
	ErrInvalidDependencyRef  = errors.New("invalid dependency reference")
	ErrImageNotFound         = errors.New("no image found for query")
	ErrImageryNotConfigured  = errors.New("image lookup is not configured")
	ErrEmptyQuery            = errors.New("query cannot be empty")
)
