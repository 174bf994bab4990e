package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/cpm"
	"taskpath/internal/domain"
)

// DependencyCandidatesInput contains the parameters for listing the tasks a
// given task may legally depend on.
type DependencyCandidatesInput struct {
	ID int // Task ID (required)
}

// DependencyCandidatesOutput contains the selectable dependency candidates,
// in task-list order.
type DependencyCandidatesOutput struct {
	Candidates []*domain.Task
}

// DependencyCandidates is the use case backing the dependency picker: it
// returns every task that is not the task itself, not already a dependency,
// and whose addition would not create a cycle. Cycle-creating candidates are
// excluded from the list, never offered.
type DependencyCandidates struct {
	tasks domain.TaskRepository
}

// NewDependencyCandidates creates a new DependencyCandidates use case.
func NewDependencyCandidates(tasks domain.TaskRepository) *DependencyCandidates {
	return &DependencyCandidates{tasks: tasks}
}

// Execute computes the legal candidate list.
func (uc *DependencyCandidates) Execute(_ context.Context, in DependencyCandidatesInput) (*DependencyCandidatesOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	all, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	g := cpm.NewGraph(engineTasks(all))

	out := &DependencyCandidatesOutput{}
	for _, candidate := range all {
		if candidate.ID == in.ID {
			continue
		}
		if task.DependsOn(candidate.ID) {
			continue
		}
		if g.WouldCreateCycle(in.ID, candidate.ID) {
			continue
		}
		out.Candidates = append(out.Candidates, candidate)
	}
	return out, nil
}
