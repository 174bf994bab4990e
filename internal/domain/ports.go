package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// IsInitialized reports whether the store already exists.
	IsInitialized() bool

	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the filter, ordered by ID.
	List(filter TaskFilter) ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID and unlinks it from every other task's
	// dependency list so no dangling references persist.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)

	// SetDependencies replaces a task's dependency list wholesale
	// (clear and re-link, not merge). The task's own ID is ignored.
	SetDependencies(id int, dependencyIDs []int) error
}

// TaskFilter specifies criteria for listing tasks.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	Completed *bool    // nil = all tasks, set = only tasks with matching completion state
	Labels    []string // Filter by labels (AND condition)
}

// ImageLookup queries an external service for an illustration URL.
type ImageLookup interface {
	// Search returns the URL of an image matching the query.
	Search(ctx context.Context, query string) (string, error)
}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration.
	Load() (*Config, error)
}

// Logger provides leveled, per-task logging.
// taskID 0 means the entry is global (not tied to a task).
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
