// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"taskpath/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks   map[int]*domain.Task
	SaveErr error
	GetErr  error
	NextIDN int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int]*domain.Task),
		NextIDN: 1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns tasks ordered by ID, honoring the completion filter.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for id := 0; id < m.NextIDN; id++ {
		t, ok := m.Tasks[id]
		if !ok {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		matched := true
		for _, label := range filter.Labels {
			if !t.HasLabel(label) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	if task.ID >= m.NextIDN {
		m.NextIDN = task.ID + 1
	}
	return nil
}

// Delete removes a task by ID and unlinks it from remaining tasks.
func (m *MockTaskRepository) Delete(id int) error {
	delete(m.Tasks, id)
	for _, t := range m.Tasks {
		var deps []int
		for _, dep := range t.DependencyIDs {
			if dep != id {
				deps = append(deps, dep)
			}
		}
		t.DependencyIDs = deps
	}
	return nil
}

// NextID returns the next available task ID.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// SetDependencies replaces a task's dependency list.
func (m *MockTaskRepository) SetDependencies(id int, dependencyIDs []int) error {
	task, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	var deps []int
	for _, dep := range dependencyIDs {
		if dep != id {
			deps = append(deps, dep)
		}
	}
	task.DependencyIDs = deps
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Initialized bool
}

// IsInitialized reports whether Initialize has been called.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// Initialize marks the store as initialized.
func (m *MockStoreInitializer) Initialize() error {
	m.Initialized = true
	return nil
}

// MockImageLookup is a test double for domain.ImageLookup.
type MockImageLookup struct {
	URL string
	Err error
}

// Search returns the configured URL or error.
func (m *MockImageLookup) Search(_ context.Context, _ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}
