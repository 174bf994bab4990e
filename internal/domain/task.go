// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a schedulable work item managed by taskpath.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created       time.Time  `json:"created"`                // Creation time
	DueDate       *time.Time `json:"dueDate,omitempty"`      // Optional due date (calendar day)
	Title         string     `json:"title"`                  // Title (required)
	Description   string     `json:"description,omitempty"`  // Description (optional)
	ImageURL      string     `json:"imageURL,omitempty"`     // Illustration URL from the image-lookup service
	Labels        []string   `json:"labels,omitempty"`       // Labels
	DependencyIDs []int      `json:"dependencies,omitempty"` // IDs of tasks this task depends on, in user order
	Completed     bool       `json:"completed"`              // Completion flag
	ID            int        `json:"-"`                      // Task ID (stored as map key, not in value)
}

// DependsOn reports whether id is a direct dependency of the task.
func (t *Task) DependsOn(id int) bool {
	for _, dep := range t.DependencyIDs {
		if dep == id {
			return true
		}
	}
	return false
}

// HasLabel reports whether the task carries the given label.
func (t *Task) HasLabel(label string) bool {
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// TaskWithLinks is a task together with its dependency and dependent tasks
// resolved against the full task set. Dependent lists are derived by inverting
// dependency lists; they are never stored.
type TaskWithLinks struct {
	Task         *Task
	Dependencies []*Task // Tasks this task depends on, in the task's dependency order
	Dependents   []*Task // Tasks that depend on this task, in task-list order
}

// ResolveLinks denormalizes dependency and dependent lists for every task in
// the set. Dependency ids with no corresponding task are skipped. The input
// order is preserved.
func ResolveLinks(tasks []*Task) []TaskWithLinks {
	byID := make(map[int]*Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	dependents := make(map[int][]*Task)
	for _, t := range tasks {
		for _, dep := range t.DependencyIDs {
			if _, ok := byID[dep]; ok {
				dependents[dep] = append(dependents[dep], t)
			}
		}
	}

	linked := make([]TaskWithLinks, 0, len(tasks))
	for _, t := range tasks {
		var deps []*Task
		for _, dep := range t.DependencyIDs {
			if dt, ok := byID[dep]; ok {
				deps = append(deps, dt)
			}
		}
		linked = append(linked, TaskWithLinks{
			Task:         t,
			Dependencies: deps,
			Dependents:   dependents[t.ID],
		})
	}
	return linked
}
