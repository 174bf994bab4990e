package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpath/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type mockTaskRepository struct {
	tasks   map[int]*domain.Task
	saveErr error
	getErr  error
	nextID  int
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{
		tasks:  make(map[int]*domain.Task),
		nextID: 1,
	}
}

func (m *mockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

func (m *mockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for id := 0; id < m.nextID; id++ {
		t, ok := m.tasks[id]
		if !ok {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (m *mockTaskRepository) Save(task *domain.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) Delete(id int) error {
	delete(m.tasks, id)
	for _, t := range m.tasks {
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

func (m *mockTaskRepository) NextID() (int, error) {
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *mockTaskRepository) SetDependencies(id int, dependencyIDs []int) error {
	task, ok := m.tasks[id]
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

// mockImageLookup is a test double for domain.ImageLookup.
type mockImageLookup struct {
	url string
	err error
}

func (m *mockImageLookup) Search(_ context.Context, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.url, nil
}

// addTask seeds the mock repository with a task.
func addTask(repo *mockTaskRepository, id int, title string, deps ...int) *domain.Task {
	task := &domain.Task{ID: id, Title: title, DependencyIDs: deps}
	repo.tasks[id] = task
	if id >= repo.nextID {
		repo.nextID = id + 1
	}
	return task
}

func TestNewTask_Execute_Success(t *testing.T) {
	repo := newMockTaskRepository()
	clock := &mockClock{now: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	uc := NewNewTask(repo, clock, nil)

	due := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:       "Test task",
		Description: "Test description",
		DueDate:     &due,
		Labels:      []string{"backend"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.TaskID)

	task := repo.tasks[1]
	require.NotNil(t, task)
	assert.Equal(t, "Test task", task.Title)
	assert.Equal(t, "Test description", task.Description)
	assert.Equal(t, due, *task.DueDate)
	assert.Equal(t, clock.now, task.Created)
	assert.False(t, task.Completed)
}

func TestNewTask_Execute_EmptyTitle(t *testing.T) {
	uc := NewNewTask(newMockTaskRepository(), &mockClock{}, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestNewTask_Execute_WithDependencies(t *testing.T) {
	repo := newMockTaskRepository()
	addTask(repo, 1, "base")
	uc := NewNewTask(repo, &mockClock{}, nil)

	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:         "dependent",
		DependencyIDs: []int{1},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1}, repo.tasks[out.TaskID].DependencyIDs)
}

func TestNewTask_Execute_DependencyNotFound(t *testing.T) {
	uc := NewNewTask(newMockTaskRepository(), &mockClock{}, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{
		Title:         "dependent",
		DependencyIDs: []int{42},
	})

	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}
