package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Labels          []string // Filter by labels (AND condition)
	IncludeComplete bool     // Include completed tasks
}

// ListTasksOutput contains the result of listing tasks. Dependency and
// dependent lists are denormalized against the full task set, so links to
// tasks filtered out of the listing still resolve.
type ListTasksOutput struct {
	Tasks []domain.TaskWithLinks
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	linked := domain.ResolveLinks(all)

	out := &ListTasksOutput{}
	for _, tl := range linked {
		if !in.IncludeComplete && tl.Task.Completed {
			continue
		}
		if !matchesLabels(tl.Task, in.Labels) {
			continue
		}
		out.Tasks = append(out.Tasks, tl)
	}
	return out, nil
}

// matchesLabels reports whether the task carries all the given labels.
func matchesLabels(t *domain.Task, labels []string) bool {
	for _, label := range labels {
		if !t.HasLabel(label) {
			return false
		}
	}
	return true
}
