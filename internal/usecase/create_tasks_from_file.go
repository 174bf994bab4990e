package usecase

import (
	"context"
	"fmt"

	"taskpath/internal/domain"
)

// CreateTasksFromFileInput contains the parameters for creating tasks from a
// YAML import file.
type CreateTasksFromFileInput struct {
	Content string // File content
	DryRun  bool   // Parse and validate without creating tasks
}

// CreatedTask represents a task that was created from file input.
type CreatedTask struct {
	Title         string
	DependencyIDs []int
	ID            int
}

// CreateTasksFromFileOutput contains the result of the import.
type CreateTasksFromFileOutput struct {
	Tasks []CreatedTask // Created tasks (or tasks that would be created in dry-run mode)
}

// CreateTasksFromFile is the use case for bulk-importing tasks. Dependency
// references may point at earlier tasks in the same file (relative index) or
// at existing tasks ("#id"); either way the edges go through the same
// validation as interactively created ones.
type CreateTasksFromFile struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTasksFromFile creates a new CreateTasksFromFile use case.
func NewCreateTasksFromFile(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CreateTasksFromFile {
	return &CreateTasksFromFile{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates tasks from the given file content.
func (uc *CreateTasksFromFile) Execute(_ context.Context, in CreateTasksFromFileInput) (*CreateTasksFromFileOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	if in.DryRun {
		return uc.dryRun(drafts)
	}

	out := &CreateTasksFromFileOutput{}
	createdIDs := make([]int, 0, len(drafts))
	for i, draft := range drafts {
		deps, err := uc.resolveDeps(draft, createdIDs)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}

		id, err := uc.tasks.NextID()
		if err != nil {
			return nil, fmt.Errorf("generate task ID: %w", err)
		}

		task := &domain.Task{
			ID:            id,
			Title:         draft.Title,
			Description:   draft.Description,
			Labels:        draft.Labels,
			DependencyIDs: deps,
			Created:       uc.clock.Now(),
		}
		if draft.Due != "" {
			due, err := domain.ParseDueDate(draft.Due)
			if err != nil {
				return nil, fmt.Errorf("task %d: %w", i+1, err)
			}
			task.DueDate = &due
		}

		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("save task %d: %w", i+1, err)
		}

		createdIDs = append(createdIDs, id)
		out.Tasks = append(out.Tasks, CreatedTask{ID: id, Title: draft.Title, DependencyIDs: deps})

		if uc.logger != nil {
			uc.logger.Info(id, "task", fmt.Sprintf("imported: %q", draft.Title))
		}
	}

	return out, nil
}

// dryRun validates references without touching the store. Relative references
// resolve to placeholder IDs counted from zero.
func (uc *CreateTasksFromFile) dryRun(drafts []domain.TaskDraft) (*CreateTasksFromFileOutput, error) {
	out := &CreateTasksFromFileOutput{}
	placeholders := make([]int, 0, len(drafts))
	for i, draft := range drafts {
		deps, err := uc.resolveDeps(draft, placeholders)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		out.Tasks = append(out.Tasks, CreatedTask{Title: draft.Title, DependencyIDs: deps})
		placeholders = append(placeholders, 0)
	}
	return out, nil
}

// resolveDeps maps the draft's references to task IDs and verifies that
// absolute references exist.
func (uc *CreateTasksFromFile) resolveDeps(draft domain.TaskDraft, createdIDs []int) ([]int, error) {
	var deps []int
	for _, ref := range draft.DependsOn {
		id, err := ref.Resolve(createdIDs)
		if err != nil {
			return nil, err
		}
		if t, err := uc.tasks.Get(id); err != nil {
			return nil, fmt.Errorf("get dependency task: %w", err)
		} else if t == nil && !contains(createdIDs, id) {
			return nil, fmt.Errorf("%w: %d", domain.ErrDependencyNotFound, id)
		}
		deps = append(deps, id)
	}
	return deps, nil
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
