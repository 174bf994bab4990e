package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/cpm"
	"taskpath/internal/domain"
)

// SetDependenciesInput contains the parameters for replacing a task's
// dependency list. Semantics are clear and re-link, not merge.
type SetDependenciesInput struct {
	DependencyIDs []int // The complete new dependency list
	ID            int   // Task ID (required)
}

// SetDependencies is the use case for replacing a task's dependencies.
// Every proposed edge passes the transitive cycle guard before it is
// admitted; an edge that would let the task reach itself is rejected.
type SetDependencies struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSetDependencies creates a new SetDependencies use case.
func NewSetDependencies(tasks domain.TaskRepository, logger domain.Logger) *SetDependencies {
	return &SetDependencies{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute validates and stores the new dependency list. The task's own ID is
// ignored rather than rejected; unknown IDs and cycle-creating edges fail the
// whole update.
func (uc *SetDependencies) Execute(_ context.Context, in SetDependenciesInput) error {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	all, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	g := cpm.NewGraph(engineTasks(all))

	var deps []int
	for _, dep := range in.DependencyIDs {
		if dep == in.ID {
			continue
		}
		if !g.Has(dep) {
			return fmt.Errorf("%w: %d", domain.ErrDependencyNotFound, dep)
		}
		if g.WouldCreateCycle(in.ID, dep) {
			return fmt.Errorf("%w: %d -> %d", domain.ErrDependencyCycle, in.ID, dep)
		}
		deps = append(deps, dep)
	}

	if err := uc.tasks.SetDependencies(in.ID, deps); err != nil {
		return fmt.Errorf("set dependencies: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.ID, "deps", fmt.Sprintf("dependencies set to %v", deps))
	}

	return nil
}

// engineTasks converts stored tasks into the engine's task representation.
func engineTasks(tasks []*domain.Task) []cpm.Task {
	out := make([]cpm.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, cpm.Task{
			ID:            t.ID,
			Title:         t.Title,
			DueDate:       t.DueDate,
			Completed:     t.Completed,
			DependencyIDs: t.DependencyIDs,
		})
	}
	return out
}
